// Package engine adapts the external documentation generator.
//
// The generator owns comment parsing, cross-referencing and rendering. This
// package only hands it a resolved file set plus the task configuration and
// reports whether it succeeded. BinaryEngine runs the sassdoc executable;
// NoopEngine is used by tests and dry runs.
package engine

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	"git.home.luguber.info/inful/sassdocbuilder/internal/sources"
)

// Request is one engine invocation.
type Request struct {
	Files  *sources.FileSet
	Config *config.Config
}

// Engine processes a request, writing artifacts under Config.Dest.
type Engine interface {
	Name() string
	Process(ctx context.Context, req Request) error
}

// NoopEngine accepts every request without producing output.
type NoopEngine struct{}

func (NoopEngine) Name() string { return "noop" }

func (NoopEngine) Process(_ context.Context, req Request) error {
	slog.Debug("NoopEngine skipping generation", "files", req.Files.Len())
	return nil
}
