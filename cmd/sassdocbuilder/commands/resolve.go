package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sassdocbuilder/internal/sources"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Excluded bool `help:"Also list files dropped by exclusions"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	resolver, err := sources.NewResolver(root.baseDir())
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	set, err := resolver.Resolve(ctx, []string{cfg.Source}, cfg.Exclude)
	if err != nil {
		return err
	}

	for _, f := range set.Files {
		_, _ = fmt.Fprintln(g.out(), f)
	}
	if r.Excluded {
		for _, f := range set.Excluded {
			_, _ = fmt.Fprintf(g.out(), "excluded: %s\n", f)
		}
	}
	return nil
}
