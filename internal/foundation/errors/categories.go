package errors

import "log/slog"

// ErrorCategory is the broad class of an error. It selects the default
// severity and the CLI exit code.
type ErrorCategory string

const (
	// CategoryConfig covers configuration files that are missing, unreadable or undecodable.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	// CategorySources covers glob expansion and exclusion failures.
	CategorySources    ErrorCategory = "sources"
	CategoryEngine     ErrorCategory = "engine"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryGit        ErrorCategory = "git"

	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ExitCode returns the process exit status for errors of this category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryConfig:
		return 7
	case CategoryGit:
		return 8
	case CategoryInternal:
		return 10
	case CategoryEngine, CategorySources, CategoryFileSystem:
		return 11
	case CategoryRuntime:
		return 12
	default:
		return 1
	}
}

func (c ErrorCategory) defaultSeverity() ErrorSeverity {
	switch c {
	case CategoryConfig, CategoryValidation, CategoryNotFound, CategoryInternal:
		return SeverityFatal
	case CategoryGit:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // nothing can run
	SeverityError   ErrorSeverity = "error"   // the current run fails
	SeverityWarning ErrorSeverity = "warning" // the run continues without the feature
)

// Level maps the severity to a log level.
func (s ErrorSeverity) Level() slog.Level {
	if s == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// Field is one piece of structured error context.
type Field struct {
	Key   string
	Value any
}
