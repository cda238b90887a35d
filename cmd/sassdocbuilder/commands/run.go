package commands

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/sassdocbuilder/internal/config"
	"git.home.luguber.info/inful/sassdocbuilder/internal/task"
)

// RunCmd implements the default 'run' command.
type RunCmd struct {
	Dest   string   `short:"o" help:"Override the destination directory"`
	Group  []string `help:"Replace group labels (id=Label, repeatable)" placeholder:"ID=LABEL"`
	Report string   `help:"Write an artifact report (JSON) to this path"`
}

func (r *RunCmd) Run(g *Global, root *CLI) error {
	cfg, err := r.config(root)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	opts := []task.Option{task.WithBaseDir(root.baseDir())}
	if r.Report != "" {
		opts = append(opts, task.WithReport(r.Report))
	}
	res, err := task.New(cfg, g.engine(), opts...).Start(ctx).Wait(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(g.out(), "Documented %d files into %s in %s\n", len(res.Files), cfg.Dest, res.Duration.Round(time.Millisecond))
	if res.Report != nil {
		_, _ = fmt.Fprintf(g.out(), "Report: %d artifacts, digest %s\n", res.Report.Len(), res.Report.Digest)
	}
	return nil
}

func (r *RunCmd) config(root *CLI) (*config.Config, error) {
	cfg, err := root.LoadConfig()
	if err != nil {
		return nil, err
	}
	if r.Dest != "" {
		cfg.Dest = r.Dest
	}
	if len(r.Group) > 0 {
		groups, err := config.GroupsFromPairs(r.Group)
		if err != nil {
			return nil, err
		}
		cfg.Groups = groups
	}
	return cfg, nil
}
