package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Configuration valid (snapshot %s)\n", cfg.Snapshot())
	return nil
}
