// Package runner registers the documentation task with a goyek flow so
// later build steps can depend on it.
package runner

import (
	"path/filepath"

	"github.com/goyek/goyek/v2"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	"git.home.luguber.info/inful/sassdocbuilder/internal/engine"
	"git.home.luguber.info/inful/sassdocbuilder/internal/metrics"
	"git.home.luguber.info/inful/sassdocbuilder/internal/task"
)

// Options configures the registered task.
type Options struct {
	// BaseDir is the project root. Defaults to ".".
	BaseDir string
	// ConfigPath is loaded on every invocation; missing files fall back to
	// the stock configuration. Defaults to BaseDir/sassdoc.yaml.
	ConfigPath string
	// Engine defaults to the sassdoc executable.
	Engine     engine.Engine
	Recorder   metrics.Recorder
	ReportPath string
	Deps       goyek.Deps
}

// Register defines the "sassdoc" task on flow.
func Register(flow *goyek.Flow, opts Options) *goyek.DefinedTask {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(opts.BaseDir, config.DefaultConfigFile)
	}
	if opts.Engine == nil {
		opts.Engine = &engine.BinaryEngine{}
	}

	return flow.Define(goyek.Task{
		Name:  task.Name,
		Usage: "Generate SassDoc documentation",
		Deps:  opts.Deps,
		Action: func(a *goyek.A) {
			cfg, err := config.LoadOrDefault(opts.ConfigPath)
			if err != nil {
				a.Fatal(err)
			}

			taskOpts := []task.Option{task.WithBaseDir(opts.BaseDir), task.WithRecorder(opts.Recorder)}
			if opts.ReportPath != "" {
				taskOpts = append(taskOpts, task.WithReport(opts.ReportPath))
			}
			c := task.New(cfg, opts.Engine, taskOpts...).Start(a.Context())
			res, err := c.Wait(a.Context())
			if err != nil {
				a.Fatal(err)
			}
			a.Logf("documented %d files into %s (run %s)", len(res.Files), cfg.Dest, res.RunID)
		},
	})
}
