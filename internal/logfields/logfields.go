package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyTask       = "task"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyPattern    = "pattern"
	KeyCount      = "count"
	KeyDest       = "dest"
	KeyEngine     = "engine"
	KeyURL        = "url"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr    { return slog.String(KeyRunID, id) }
func Task(name string) slog.Attr   { return slog.String(KeyTask, name) }
func Stage(name string) slog.Attr  { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func File(f string) slog.Attr      { return slog.String(KeyFile, f) }
func Pattern(p string) slog.Attr   { return slog.String(KeyPattern, p) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Dest(d string) slog.Attr      { return slog.String(KeyDest, d) }
func Engine(name string) slog.Attr { return slog.String(KeyEngine, name) }
func URL(u string) slog.Attr       { return slog.String(KeyURL, u) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
