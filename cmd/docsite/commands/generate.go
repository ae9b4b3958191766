package commands

import (
	"git.home.luguber.info/inful/docsite/internal/hugo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string            `short:"o" help:"Directory the Hugo configuration is written to" default:"./site"`
	Format []string          `short:"f" help:"Hugo configuration format, repeatable" enum:"yaml,toml,json" default:"yaml"`
	Param  map[string]string `name:"param" short:"p" help:"Override a Hugo param (dotted key=value)" mapsep:"none"`
}

func (c *GenerateCmd) Run(g *Global, root *CLI) error {
	s, err := g.Loader().Load(root.Config)
	if err != nil {
		return err
	}
	formats := make([]hugo.Format, 0, len(c.Format))
	for _, f := range c.Format {
		formats = append(formats, hugo.Format(f))
	}
	paths, err := hugo.WriteAll(g.Context, s, c.Output, formats, c.options(g)...)
	if err != nil {
		return err
	}
	for _, path := range paths {
		g.printf("wrote %s\n", path)
	}
	g.Logger.Debug("Generation complete", logfields.Path(c.Output), "files", len(paths))
	return nil
}

func (c *GenerateCmd) options(g *Global) []hugo.Option {
	opts := []hugo.Option{hugo.WithRecorder(g.Recorder)}
	if len(c.Param) > 0 {
		opts = append(opts, hugo.WithParams(hugo.ParamsFromFlags(c.Param)))
	}
	return opts
}
