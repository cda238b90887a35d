// Package sources resolves the style-sheet file set handed to the documentation engine.
//
// Resolution is deterministic: every pattern is expanded relative to the
// project root, the union is de-duplicated and sorted, and exclusions are
// removed last. Exclusions that match nothing are inert.
package sources

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sassdocbuilder/internal/logfields"
)

// FileSet is the resolved engine input.
type FileSet struct {
	// BaseDir is the absolute project root.
	BaseDir string
	// Files are root-relative, slash separated, sorted and unique.
	Files []string
	// Excluded are glob matches removed by an exclusion entry.
	Excluded []string
}

// Len returns the number of files handed to the engine.
func (s *FileSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Files)
}

// Abs returns the files as absolute OS paths.
func (s *FileSet) Abs() []string {
	out := make([]string, len(s.Files))
	for i, f := range s.Files {
		out[i] = filepath.Join(s.BaseDir, filepath.FromSlash(f))
	}
	return out
}

// Resolver expands globs against a project root.
type Resolver struct {
	baseDir string
	fsys    fs.FS
}

// NewResolver creates a resolver rooted at baseDir.
func NewResolver(baseDir string) (*Resolver, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategorySources, "resolve project root").
			WithContext("path", baseDir).
			Build()
	}
	return &Resolver{baseDir: abs, fsys: os.DirFS(abs)}, nil
}

// BaseDir returns the absolute project root.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Resolve expands patterns, drops paths matched by exclude and returns the
// remaining files.
func (r *Resolver) Resolve(ctx context.Context, patterns, exclude []string) (*FileSet, error) {
	results := make([][]string, len(patterns))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range patterns {
		g.Go(func() error {
			matches, err := r.expand(gctx, p)
			if err != nil {
				return err
			}
			results[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := slices.Concat(results...)
	slices.Sort(all)
	all = slices.Compact(all)

	excludes := make([]string, 0, len(exclude))
	for _, ex := range exclude {
		rel, ok := r.relative(ex)
		if !ok {
			slog.Debug("Exclusion outside project root is inert", logfields.Pattern(ex))
			continue
		}
		excludes = append(excludes, rel)
	}

	set := &FileSet{BaseDir: r.baseDir, Files: make([]string, 0, len(all))}
	used := make(map[string]bool, len(excludes))
	for _, f := range all {
		if ex, hit := matchAny(excludes, f); hit {
			used[ex] = true
			set.Excluded = append(set.Excluded, f)
			continue
		}
		set.Files = append(set.Files, f)
	}
	for _, ex := range excludes {
		if !used[ex] {
			slog.Debug("Exclusion matched no source file", logfields.Pattern(ex))
		}
	}
	return set, nil
}

func (r *Resolver) expand(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, ok := r.relative(pattern)
	if !ok {
		return nil, ferrors.SourcesError("source pattern escapes the project root").
			WithContext("pattern", pattern).
			Build()
	}
	if !doublestar.ValidatePattern(rel) {
		return nil, ferrors.SourcesError("malformed source glob").
			WithContext("pattern", pattern).
			Build()
	}
	matches, err := doublestar.Glob(r.fsys, rel, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategorySources, "expand source glob").
			WithContext("pattern", pattern).
			Build()
	}
	slog.Debug("Expanded source glob", logfields.Pattern(pattern), logfields.Count(len(matches)))
	return matches, nil
}

// relative converts a pattern or path into a slash separated path relative to
// the root. Leading "./" is dropped; absolute paths must live under the root.
func (r *Resolver) relative(p string) (string, bool) {
	p = strings.TrimSpace(p)
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(r.baseDir, p)
		if err != nil {
			return "", false
		}
		p = rel
	}
	p = path.Clean(filepath.ToSlash(p))
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}

func matchAny(patterns []string, file string) (string, bool) {
	for _, p := range patterns {
		if p == file {
			return p, true
		}
		if ok, _ := doublestar.Match(p, file); ok {
			return p, true
		}
	}
	return "", false
}
