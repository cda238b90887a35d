package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sassdocbuilder/internal/logfields"
	"git.home.luguber.info/inful/sassdocbuilder/internal/workspace"
)

// BinaryEngine invokes the sassdoc executable.
type BinaryEngine struct {
	// Binary overrides Config.Engine.Binary when set.
	Binary string
	// WorkspaceDir is where the generated config file is staged (os.TempDir when empty).
	WorkspaceDir string
}

func (b *BinaryEngine) Name() string { return "sassdoc" }

func (b *BinaryEngine) binary(cfg *config.Config) string {
	if b.Binary != "" {
		return b.Binary
	}
	if cfg.Engine.Binary != "" {
		return cfg.Engine.Binary
	}
	return config.DefaultEngineBinary
}

// Process stages the engine configuration and runs the executable in the
// project root with the resolved files as arguments. An empty file set is a
// successful no-op.
func (b *BinaryEngine) Process(ctx context.Context, req Request) error {
	if req.Files.Len() == 0 {
		slog.Warn("No source files matched; skipping documentation engine", logfields.Pattern(req.Config.Source))
		return nil
	}

	bin, err := exec.LookPath(b.binary(req.Config))
	if err != nil {
		return ferrors.WrapError(fmt.Errorf("%w: %w", ErrEngineNotFound, err), ferrors.CategoryEngine, "locate documentation engine").
			WithContext("binary", b.binary(req.Config)).
			Build()
	}

	rc, err := EncodeConfig(req.Config)
	if err != nil {
		return ferrors.WrapError(fmt.Errorf("%w: %w", ErrConfigWriteFailed, err), ferrors.CategoryInternal, "encode engine configuration").Build()
	}

	ws := workspace.NewManager(b.WorkspaceDir)
	if err := ws.Create(); err != nil {
		return ferrors.WrapError(fmt.Errorf("%w: %w", ErrConfigWriteFailed, err), ferrors.CategoryFileSystem, "create engine workspace").Build()
	}
	defer func() {
		if err := ws.Cleanup(); err != nil {
			slog.Warn("Failed to cleanup engine workspace", logfields.Error(err))
		}
	}()
	rcPath, err := ws.WriteFile(RCFileName, rc)
	if err != nil {
		return ferrors.WrapError(fmt.Errorf("%w: %w", ErrConfigWriteFailed, err), ferrors.CategoryFileSystem, "stage engine configuration").Build()
	}

	args := Args(req, rcPath)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = req.Files.BaseDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Invoking documentation engine", logfields.Engine(bin), logfields.Count(req.Files.Len()), logfields.Dest(req.Config.Dest))
	err = cmd.Run()

	outStr, errStr := stdout.String(), stderr.String()
	if outStr != "" {
		slog.Debug("engine stdout", "output", outStr)
	}
	if errStr != "" {
		slog.Warn("engine stderr", "error_output", errStr)
	}

	if err != nil {
		output := errStr
		if output == "" {
			output = outStr
		}
		cause := fmt.Errorf("%w: %w", ErrEngineFailed, err)
		if output != "" {
			cause = fmt.Errorf("%w: %w: %s", ErrEngineFailed, err, output)
		}
		return ferrors.WrapError(cause, ferrors.CategoryEngine, "documentation engine failed").
			WithContext("binary", bin).
			WithContext("dest", req.Config.Dest).
			Build()
	}
	return nil
}

// Args builds the engine command line: resolved files first, then options.
func Args(req Request, rcPath string) []string {
	args := make([]string, 0, req.Files.Len()+8)
	args = append(args, req.Files.Files...)
	args = append(args, "--config", rcPath, "--dest", req.Config.Dest)
	if req.Config.Verbose {
		args = append(args, "--verbose")
	}
	if req.Config.Strict {
		args = append(args, "--strict")
	}
	if req.Config.NoUpdateNotifier {
		args = append(args, "--no-update-notifier")
	}
	return args
}
