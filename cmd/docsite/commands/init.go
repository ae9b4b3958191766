package commands

import (
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing declaration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	g.Logger.Info("Initializing site declaration", logfields.Path(root.Config), "force", i.Force)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	g.printf("wrote example declaration to %s\n", root.Config)
	return nil
}
