// Package watch regenerates documentation when sources change.
//
// Events are debounced and runs are serialized: triggers arriving while a
// run is in flight coalesce into a single follow-up run.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/sassdocbuilder/internal/logfields"
	"git.home.luguber.info/inful/sassdocbuilder/internal/metrics"
	"git.home.luguber.info/inful/sassdocbuilder/internal/task"
)

// DefaultDebounce is the quiet period after the last event before a run starts.
const DefaultDebounce = 500 * time.Millisecond

// Trigger reasons.
const (
	ReasonInitial  = "initial"
	ReasonChange   = "change"
	ReasonInterval = "interval"
)

// Factory builds the task for one run, typically reloading configuration.
type Factory func(ctx context.Context) (*task.Task, error)

// Options configures a Watcher.
type Options struct {
	// Dirs are the trees to watch recursively.
	Dirs []string
	// Ignore lists trees whose events never trigger a run (the destination).
	Ignore []string
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	// Every additionally regenerates on a fixed interval when positive.
	Every    time.Duration
	Recorder metrics.Recorder
	// OnResult is called after every run.
	OnResult func(reason string, res *task.Result, err error)
}

// Watcher re-runs the documentation task on change.
type Watcher struct {
	factory  Factory
	opts     Options
	ignore   []string
	fsw      *fsnotify.Watcher
	interval chan struct{}
}

// New creates a watcher and registers the watched trees.
func New(factory Factory, opts Options) (*Watcher, error) {
	if factory == nil {
		return nil, errors.New("watch: nil task factory")
	}
	if len(opts.Dirs) == 0 {
		return nil, errors.New("watch: no directories to watch")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		factory:  factory,
		opts:     opts,
		fsw:      fsw,
		interval: make(chan struct{}, 1),
	}
	for _, dir := range opts.Ignore {
		abs, err := filepath.Abs(dir)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to resolve ignored path %s: %w", dir, err)
		}
		w.ignore = append(w.ignore, abs)
	}
	for _, dir := range opts.Dirs {
		abs, err := filepath.Abs(dir)
		if err == nil {
			err = w.addTree(abs)
		}
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run performs an initial run, then regenerates on every debounced change
// until ctx is canceled. Run failures are reported, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	if w.opts.Every > 0 {
		s, err := w.schedule()
		if err != nil {
			return err
		}
		s.Start()
		defer func() {
			if err := s.Shutdown(); err != nil {
				slog.Warn("Failed to stop scheduler", logfields.Error(err))
			}
		}()
	}

	slog.Info("Watching sources", slog.Any("dirs", w.opts.Dirs), slog.Duration("debounce", w.opts.Debounce))
	w.runOnce(ctx, ReasonInitial)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.handle(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.opts.Debounce)
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Source watcher error", logfields.Error(err))
		case <-fire:
			fire = nil
			w.runOnce(ctx, ReasonChange)
		case <-w.interval:
			w.runOnce(ctx, ReasonInterval)
		}
	}
}

func (w *Watcher) schedule() (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(w.opts.Every),
		gocron.NewTask(func() {
			select {
			case w.interval <- struct{}{}:
			default:
			}
		}),
		gocron.WithName(task.Name+"-interval"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create periodic regeneration job: %w", err)
	}
	return s, nil
}

func (w *Watcher) runOnce(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	if reason != ReasonInitial {
		w.opts.Recorder.IncWatchTrigger(reason)
	}
	slog.Info("Regenerating documentation", slog.String("reason", reason))

	var res *task.Result
	t, err := w.factory(ctx)
	if err == nil {
		res, err = t.Run(ctx)
	}
	if err != nil {
		slog.Error("Regeneration failed", slog.String("reason", reason), logfields.Error(err))
	}
	if w.opts.OnResult != nil {
		w.opts.OnResult(reason, res, err)
	}
}

// handle reports whether ev should trigger a run, watching new directories.
func (w *Watcher) handle(ev fsnotify.Event) bool {
	if w.ignored(ev.Name) || ev.Op == fsnotify.Chmod {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if err := w.addTree(ev.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to watch new directory", logfields.Path(ev.Name), logfields.Error(err))
		}
	}
	slog.Debug("Source change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
	return true
}

// addTree watches root and every directory below it. Non-directories are ignored.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(p) || (p != root && strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		return w.fsw.Add(p)
	})
}

func (w *Watcher) ignored(p string) bool {
	for _, dir := range w.ignore {
		if p == dir || strings.HasPrefix(p, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
