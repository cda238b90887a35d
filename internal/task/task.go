package task

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	"git.home.luguber.info/inful/sassdocbuilder/internal/engine"
	"git.home.luguber.info/inful/sassdocbuilder/internal/logfields"
	"git.home.luguber.info/inful/sassdocbuilder/internal/metrics"
	"git.home.luguber.info/inful/sassdocbuilder/internal/observability"
	"git.home.luguber.info/inful/sassdocbuilder/internal/project"
	"git.home.luguber.info/inful/sassdocbuilder/internal/report"
	"git.home.luguber.info/inful/sassdocbuilder/internal/sources"
)

// Name is the name the task is registered under.
const Name = "sassdoc"

// Stage names, as logged and recorded.
const (
	StageResolve   = "resolve"
	StagePreflight = "preflight"
	StageEngine    = "engine"
	StageReport    = "report"
)

// Result describes a finished run.
type Result struct {
	RunID    string
	Files    []string
	Excluded []string
	Duration time.Duration
	Metadata *project.Metadata
	// Report is set when the task was created WithReport.
	Report *report.Report
}

// Task is one configured documentation run.
type Task struct {
	cfg        *config.Config
	engine     engine.Engine
	baseDir    string
	recorder   metrics.Recorder
	report     bool
	reportPath string
}

// Option configures a Task.
type Option func(*Task)

// WithBaseDir sets the project root globs and relative paths resolve against.
func WithBaseDir(dir string) Option {
	return func(t *Task) { t.baseDir = dir }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(t *Task) {
		if r != nil {
			t.recorder = r
		}
	}
}

// WithReport builds an artifact report after the engine succeeds and, when
// path is not empty, writes it there.
func WithReport(path string) Option {
	return func(t *Task) {
		t.report = true
		t.reportPath = path
	}
}

// New creates a task over a copy of cfg (the stock configuration when nil).
func New(cfg *config.Config, eng engine.Engine, opts ...Option) *Task {
	if cfg == nil {
		cfg = config.Default()
	}
	if eng == nil {
		eng = engine.NoopEngine{}
	}
	t := &Task{
		cfg:      cfg.Clone(),
		engine:   eng,
		baseDir:  ".",
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns a copy of the task configuration.
func (t *Task) Config() *config.Config { return t.cfg.Clone() }

// Run executes the task and blocks until the engine finishes.
func (t *Task) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	ctx = observability.WithTask(observability.WithRunID(ctx, runID), Name)
	start := time.Now()
	res := &Result{RunID: runID}

	err := t.run(ctx, res)
	res.Duration = time.Since(start)
	t.recorder.ObserveRunDuration(res.Duration)
	t.recorder.IncRunOutcome(metrics.OutcomeFor(err, ctx.Err() != nil))

	if err != nil {
		observability.ErrorContext(ctx, "Documentation run failed", logfields.Duration(res.Duration), logfields.Error(err))
		return res, err
	}
	observability.InfoContext(ctx, "Documentation run completed",
		logfields.Count(len(res.Files)),
		logfields.Dest(t.cfg.Dest),
		logfields.Duration(res.Duration))
	return res, nil
}

func (t *Task) run(ctx context.Context, res *Result) error {
	// Validate canonicalizes in place, so each run works on its own copy.
	cfg := t.cfg.Clone()
	if err := config.Validate(cfg); err != nil {
		return err
	}

	var files *sources.FileSet
	err := t.stage(ctx, StageResolve, func(ctx context.Context) error {
		r, err := sources.NewResolver(t.baseDir)
		if err != nil {
			return err
		}
		files, err = r.Resolve(ctx, []string{cfg.Source}, cfg.Exclude)
		if err != nil {
			return err
		}
		res.Files, res.Excluded = files.Files, files.Excluded
		t.recorder.SetFilesResolved(files.Len())
		t.recorder.SetFilesExcluded(len(files.Excluded))
		observability.InfoContext(ctx, "Resolved source files",
			logfields.Pattern(cfg.Source),
			logfields.Count(files.Len()),
			slog.Int("excluded", len(files.Excluded)))
		return nil
	})
	if err != nil {
		return err
	}

	err = t.stage(ctx, StagePreflight, func(ctx context.Context) error {
		md, err := project.Inspect(files.BaseDir, cfg)
		if err != nil {
			return err
		}
		for _, w := range md.Warnings {
			observability.WarnContext(ctx, w)
		}
		res.Metadata = md
		return nil
	})
	if err != nil {
		return err
	}

	err = t.stage(ctx, StageEngine, func(ctx context.Context) error {
		return t.engine.Process(ctx, engine.Request{Files: files, Config: cfg})
	})
	if err != nil {
		return err
	}

	if !t.report {
		return nil
	}
	return t.stage(ctx, StageReport, func(ctx context.Context) error {
		dest := cfg.Dest
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(files.BaseDir, filepath.FromSlash(dest))
		}
		r, err := report.Build(ctx, dest, t.reportPath)
		if err != nil {
			return err
		}
		res.Report = r
		if t.reportPath == "" {
			return nil
		}
		if err := r.Write(t.reportPath); err != nil {
			return err
		}
		observability.InfoContext(ctx, "Wrote artifact report", logfields.Path(t.reportPath), slog.String("digest", r.Digest))
		return nil
	})
}

func (t *Task) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx = observability.WithStage(ctx, name)
	start := time.Now()
	observability.DebugContext(ctx, "Stage started")

	err := fn(ctx)
	d := time.Since(start)
	t.recorder.ObserveStageDuration(name, d)

	switch {
	case err == nil:
		t.recorder.IncStageResult(name, metrics.ResultSuccess)
		observability.DebugContext(ctx, "Stage completed", logfields.Duration(d))
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil:
		t.recorder.IncStageResult(name, metrics.ResultCanceled)
	default:
		t.recorder.IncStageResult(name, metrics.ResultFailed)
	}
	return err
}
