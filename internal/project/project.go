// Package project inspects the package manifest and description file the
// documentation engine is pointed at, so problems surface before it runs.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

// Metadata summarizes the project being documented.
type Metadata struct {
	Name        string
	Version     string
	Description string
	// Title is the first heading of the description file.
	Title    string
	Warnings []string
}

type packageManifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Inspect reads cfg.Package and cfg.DescriptionPath relative to baseDir.
// Missing files become warnings. A malformed manifest is a warning unless
// cfg.Strict is set.
func Inspect(baseDir string, cfg *config.Config) (*Metadata, error) {
	md := &Metadata{}

	if cfg.Package != "" {
		if err := md.readManifest(resolve(baseDir, cfg.Package)); err != nil {
			if cfg.Strict {
				return nil, err
			}
			md.Warnings = append(md.Warnings, err.Error())
		}
	}

	if cfg.DescriptionPath != "" {
		p := resolve(baseDir, cfg.DescriptionPath)
		body, err := os.ReadFile(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			md.Warnings = append(md.Warnings, fmt.Sprintf("description file not found: %s", cfg.DescriptionPath))
		case err != nil:
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read description file").
				WithContext("path", p).
				Build()
		default:
			md.Title = FirstHeading(body)
		}
	}
	return md, nil
}

func (md *Metadata) readManifest(p string) error {
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		md.Warnings = append(md.Warnings, fmt.Sprintf("package manifest not found: %s", filepath.Base(p)))
		return nil
	}
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "read package manifest").WithContext("path", p).Build()
	}
	var pkg packageManifest
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "malformed package manifest").WithContext("path", p).Build()
	}
	md.Name, md.Version, md.Description = pkg.Name, pkg.Version, pkg.Description
	return nil
}

// FirstHeading returns the text of the first Markdown heading, or "".
func FirstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			title = strings.TrimSpace(headingText(h, body))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

func headingText(n gmast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			b.Write(t.Segment.Value(source))
			continue
		}
		b.WriteString(headingText(c, source))
	}
	return b.String()
}

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, filepath.FromSlash(p))
}
