package commands

import (
	"bytes"
	"fmt"
	"os"

	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/icon"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// IconCmd implements the 'icon' command.
type IconCmd struct {
	Name   string            `arg:"" optional:"" help:"Icon to render" enum:"${icons}" default:"oauth"`
	Attr   map[string]string `name:"attr" short:"a" help:"Attribute passed to the root element (key=value)" mapsep:"none"`
	Output string            `short:"o" help:"Write markup to this file instead of stdout"`
}

func (c *IconCmd) Run(g *Global, _ *CLI) error {
	component, ok := icon.Lookup(c.Name)
	if !ok {
		return siteerrors.ValidationFailed("name", fmt.Sprintf("unknown icon %q", c.Name))
	}

	var buf bytes.Buffer
	if err := component.Render(icon.Attributes(c.Attr)).Render(&buf); err != nil {
		return siteerrors.InternalError("icon markup could not be serialized", err)
	}
	buf.WriteByte('\n')
	g.Recorder.IncIconRender(component.Name())

	if c.Output == "" {
		_, err := g.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0o600); err != nil {
		return siteerrors.FileSystemError("write", c.Output, err)
	}
	g.Logger.Info("Wrote icon", logfields.Path(c.Output), "icon", component.Name())
	return nil
}
