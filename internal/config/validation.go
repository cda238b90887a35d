package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sassdocbuilder/internal/foundation/normalization"
)

const (
	AccessPublic  = "public"
	AccessPrivate = "private"

	SortAccess = "access"
	SortGroup  = "group"
	SortLine   = "line"
	SortFile   = "file"

	AutofillRequires = "requires"
	AutofillThrows   = "throws"
	AutofillContent  = "content"
)

var (
	accessNormalizer = normalization.NewNormalizer("access level", map[string]string{
		AccessPublic:  AccessPublic,
		AccessPrivate: AccessPrivate,
	}, "")
	sortNormalizer = normalization.NewNormalizer("sort field", map[string]string{
		SortAccess: SortAccess,
		SortGroup:  SortGroup,
		SortLine:   SortLine,
		SortFile:   SortFile,
	}, "")
	autofillNormalizer = normalization.NewNormalizer("autofill annotation", map[string]string{
		AutofillRequires: AutofillRequires,
		AutofillThrows:   AutofillThrows,
		AutofillContent:  AutofillContent,
	}, "")
)

// Validate checks the configuration and canonicalizes enum-like values in place.
func Validate(c *Config) error {
	v := &validator{cfg: c}
	for _, step := range []func() error{
		v.validatePaths,
		v.validateGlobs,
		v.validateDisplay,
		v.validateSort,
		v.validateAutofill,
		v.validateGroups,
		v.validateBasePath,
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

type validator struct {
	cfg *Config
}

func invalid(field, message string) *ferrors.ErrorBuilder {
	return ferrors.ValidationError(message).WithContext("field", field)
}

func (v *validator) validatePaths() error {
	if strings.TrimSpace(v.cfg.Source) == "" {
		return invalid("source", "source glob cannot be empty").Build()
	}
	if strings.TrimSpace(v.cfg.Dest) == "" {
		return invalid("dest", "destination directory cannot be empty").Build()
	}
	if strings.TrimSpace(v.cfg.Theme) == "" {
		return invalid("theme", "theme cannot be empty").Build()
	}
	return nil
}

func (v *validator) validateGlobs() error {
	if !doublestar.ValidatePattern(cleanPattern(v.cfg.Source)) {
		return invalid("source", "malformed source glob").WithContext("pattern", v.cfg.Source).Build()
	}
	for _, ex := range v.cfg.Exclude {
		if strings.TrimSpace(ex) == "" {
			return invalid("exclude", "exclusion entry cannot be empty").Build()
		}
		if !doublestar.ValidatePattern(cleanPattern(ex)) {
			return invalid("exclude", "malformed exclusion pattern").WithContext("pattern", ex).Build()
		}
	}
	return nil
}

func (v *validator) validateDisplay() error {
	seen := make(map[string]bool, len(v.cfg.Display.Access))
	for i, raw := range v.cfg.Display.Access {
		level, err := accessNormalizer.NormalizeWithError(raw)
		if err != nil {
			return invalid("display.access", "unknown access level").WithCause(err).Build()
		}
		if seen[level] {
			return duplicateKeyError("display.access", level, 0)
		}
		seen[level] = true
		v.cfg.Display.Access[i] = level
	}
	return nil
}

func (v *validator) validateSort() error {
	seen := make(map[string]bool, len(v.cfg.Sort))
	for i, raw := range v.cfg.Sort {
		field, direction := splitSortDirection(raw)
		name, err := sortNormalizer.NormalizeWithError(field)
		if err != nil {
			return invalid("sort", "unknown sort field").WithCause(err).Build()
		}
		if seen[name] {
			return duplicateKeyError("sort", name, 0)
		}
		seen[name] = true
		v.cfg.Sort[i] = name + direction
	}
	return nil
}

// splitSortDirection separates the field from an optional trailing "<"
// (ascending) or ">" (descending) marker, as in "line>" or "file<".
func splitSortDirection(raw string) (field, direction string) {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, "<") || strings.HasSuffix(s, ">") {
		return strings.TrimSpace(s[:len(s)-1]), s[len(s)-1:]
	}
	return s, ""
}

func (v *validator) validateAutofill() error {
	seen := make(map[string]bool, len(v.cfg.Autofill))
	for i, raw := range v.cfg.Autofill {
		name, err := autofillNormalizer.NormalizeWithError(raw)
		if err != nil {
			return invalid("autofill", "unknown autofill annotation").WithCause(err).Build()
		}
		if seen[name] {
			return duplicateKeyError("autofill", name, 0)
		}
		seen[name] = true
		v.cfg.Autofill[i] = name
	}
	return nil
}

func (v *validator) validateGroups() error {
	for id, label := range v.cfg.Groups {
		if strings.TrimSpace(id) == "" {
			return invalid("groups", "group id cannot be empty").Build()
		}
		if strings.TrimSpace(label) == "" {
			return invalid("groups", "group label cannot be empty").WithContext("key", id).Build()
		}
	}
	return nil
}

func (v *validator) validateBasePath() error {
	if v.cfg.BasePath == "" {
		return nil
	}
	u, err := url.Parse(v.cfg.BasePath)
	if err != nil {
		return invalid("base_path", "base path is not a valid URL").WithCause(err).Build()
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("base_path", fmt.Sprintf("base path must be an absolute http(s) URL, got %q", v.cfg.BasePath)).Build()
	}
	return nil
}

// cleanPattern strips a leading "./" so patterns compare against root-relative paths.
func cleanPattern(p string) string {
	p = strings.TrimSpace(p)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}
