package commands

import (
	"git.home.luguber.info/inful/docsite/internal/hugo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output string `short:"o" help:"Directory the Hugo configuration is written to" default:"./site"`
	Format string `short:"f" help:"Hugo configuration format" enum:"yaml,toml,json" default:"yaml"`
}

// Run regenerates on every change until the context is cancelled. An invalid
// declaration is reported and the previously written file is left in place.
func (c *WatchCmd) Run(g *Global, root *CLI) error {
	loader := g.Loader()
	w, err := watch.New(root.Config, func(s *site.Site, err error) {
		if err != nil {
			g.Logger.Warn("Keeping previous Hugo configuration", logfields.Error(err))
			return
		}
		path, err := hugo.Write(s, c.Output, hugo.Format(c.Format), hugo.WithRecorder(g.Recorder))
		if err != nil {
			g.Logger.Error("Failed to write Hugo configuration", logfields.Error(err))
			return
		}
		g.printf("wrote %s\n", path)
	}, watch.WithLoader(loader.Load), watch.WithLogger(g.Logger))
	if err != nil {
		return err
	}
	return w.Run(g.Context)
}
