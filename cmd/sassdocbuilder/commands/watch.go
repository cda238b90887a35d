package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sassdocbuilder/internal/logfields"
	"git.home.luguber.info/inful/sassdocbuilder/internal/metrics"
	"git.home.luguber.info/inful/sassdocbuilder/internal/task"
	"git.home.luguber.info/inful/sassdocbuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce    time.Duration `help:"Quiet period before regenerating" default:"500ms"`
	Every       time.Duration `help:"Also regenerate on this interval (0 disables)" default:"0s"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9109)"`
	Report      string        `help:"Write an artifact report (JSON) after every run"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		shutdown := serveMetrics(w.MetricsAddr, reg)
		defer shutdown()
	}

	base := root.baseDir()
	factory := func(context.Context) (*task.Task, error) {
		cfg, err := root.LoadConfig()
		if err != nil {
			return nil, err
		}
		opts := []task.Option{task.WithBaseDir(base), task.WithRecorder(recorder)}
		if w.Report != "" {
			opts = append(opts, task.WithReport(w.Report))
		}
		return task.New(cfg, g.engine(), opts...), nil
	}

	ignore := []string{resolveIn(base, cfg.Dest)}
	if w.Report != "" {
		ignore = append(ignore, w.Report)
	}
	watcher, err := watch.New(factory, watch.Options{
		Dirs:     []string{base},
		Ignore:   ignore,
		Debounce: w.Debounce,
		Every:    w.Every,
		Recorder: recorder,
		OnResult: func(reason string, res *task.Result, err error) {
			if err == nil {
				_, _ = fmt.Fprintf(g.out(), "[%s] documented %d files\n", reason, len(res.Files))
			}
		},
	})
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

func resolveIn(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, filepath.FromSlash(p))
}

func serveMetrics(addr string, reg *prom.Registry) func() {
	srv := &http.Server{Addr: addr, Handler: metrics.HTTPHandler(reg), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()
	slog.Info("Serving metrics", slog.String("addr", addr))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
