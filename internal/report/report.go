// Package report builds a manifest of the artifacts a documentation run left
// in the destination directory.
//
// The aggregate digest covers every file path and content hash, so two runs
// over unchanged inputs yield the same digest.
package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/errgroup"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

// IndexFile is the entry page the engine renders at the destination root.
const IndexFile = "index.html"

// Artifact is one generated file.
type Artifact struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Report is the artifact manifest of one destination directory.
type Report struct {
	Dest        string     `json:"dest"`
	GeneratedAt time.Time  `json:"generated_at"`
	Title       string     `json:"title,omitempty"`
	Digest      string     `json:"digest"`
	Artifacts   []Artifact `json:"artifacts"`
}

// Len returns the number of artifacts.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Artifacts)
}

// Build walks dest and hashes every regular file except those named in skip,
// such as a previous report written inside the destination.
func Build(ctx context.Context, dest string, skip ...string) (*Report, error) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		if s != "" {
			skipped[absPath(s)] = true
		}
	}
	var paths []string
	err := filepath.WalkDir(dest, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && !skipped[absPath(p)] {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "walk destination").WithContext("path", dest).Build()
	}

	artifacts := make([]Artifact, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := hashFile(p)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(dest, p)
			if err != nil {
				return err
			}
			a.Path = filepath.ToSlash(rel)
			artifacts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "hash artifacts").WithContext("path", dest).Build()
	}
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Path < artifacts[j].Path })

	r := &Report{
		Dest:        dest,
		GeneratedAt: time.Now().UTC(),
		Artifacts:   artifacts,
		Digest:      digest(artifacts),
	}
	title, err := indexTitle(filepath.Join(dest, IndexFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read index page").WithContext("path", dest).Build()
	}
	r.Title = title
	return r, nil
}

// Write stores the report as indented JSON.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "encode report").Build()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create report directory").WithContext("path", dir).Build()
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write report").WithContext("path", path).Build()
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func hashFile(p string) (Artifact, error) {
	f, err := os.Open(p) // #nosec G304 -- path comes from walking the destination
	if err != nil {
		return Artifact{}, err
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Size: n, SHA256: hex.EncodeToString(h.Sum(nil))}, nil
}

func digest(artifacts []Artifact) string {
	h := sha256.New()
	for _, a := range artifacts {
		_, _ = io.WriteString(h, a.Path)
		_, _ = h.Write([]byte{0})
		_, _ = io.WriteString(h, a.SHA256)
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func indexTitle(p string) (string, error) {
	f, err := os.Open(p) // #nosec G304 -- fixed name under the destination
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	doc, err := html.Parse(f)
	if err != nil {
		return "", err
	}
	return findTitle(doc), nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		return strings.TrimSpace(b.String())
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}
