package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sassdocbuilder/internal/engine"
)

// EngineConfigCmd implements the 'engine-config' command.
type EngineConfigCmd struct{}

func (e *EngineConfigCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	data, err := engine.EncodeConfig(cfg)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "# %s\n%s", engine.RCFileName, data)
	return nil
}
