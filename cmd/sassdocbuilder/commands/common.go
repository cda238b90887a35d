package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	"git.home.luguber.info/inful/sassdocbuilder/internal/engine"
	"git.home.luguber.info/inful/sassdocbuilder/internal/gitremote"
	"git.home.luguber.info/inful/sassdocbuilder/internal/logfields"
	"git.home.luguber.info/inful/sassdocbuilder/internal/observability"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	// Out receives command output (os.Stdout when nil).
	Out io.Writer
	// Engine overrides the sassdoc executable; used by tests.
	Engine engine.Engine
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) engine() engine.Engine {
	if g == nil || g.Engine == nil {
		return &engine.BinaryEngine{}
	}
	return g.Engine
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (defaults to <dir>/sassdoc.yaml)"`
	Dir       string           `short:"C" help:"Project root" default:"." type:"existingdir"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text, json)" default:"text" enum:"text,json"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run          RunCmd          `cmd:"" default:"withargs" help:"Generate documentation (default)"`
	Init         InitCmd         `cmd:"" help:"Write an example configuration file"`
	Validate     ValidateCmd     `cmd:"" help:"Load and validate the configuration"`
	Resolve      ResolveCmd      `cmd:"" help:"Print the source files handed to the engine"`
	Watch        WatchCmd        `cmd:"" help:"Regenerate documentation when sources change"`
	EngineConfig EngineConfigCmd `cmd:"" name:"engine-config" help:"Print the generated engine configuration"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(observability.NewLogger(os.Stderr, "", c.LogFormat, c.Verbose))
	return nil
}

// ConfigPath returns the configuration file the commands read.
func (c *CLI) ConfigPath() string {
	if c.Config != "" {
		return c.Config
	}
	return filepath.Join(c.baseDir(), config.DefaultConfigFile)
}

func (c *CLI) baseDir() string {
	if c.Dir == "" {
		return "."
	}
	return c.Dir
}

// LoadConfig loads the configuration for this invocation. An empty base
// path is filled from the repository's origin remote when one exists.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(c.ConfigPath())
	if err != nil {
		return nil, err
	}
	if c.Verbose {
		cfg.Verbose = true
	}
	if cfg.BasePath == "" {
		if base, err := gitremote.BasePath(c.baseDir()); err == nil {
			slog.Debug("Derived base path from origin remote", logfields.URL(base))
			cfg.BasePath = base
		} else {
			slog.Debug("No base path derived", logfields.Error(err))
		}
	}
	return cfg, nil
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
