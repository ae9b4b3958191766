package commands

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	s, err := g.Loader().Load(root.Config)
	if err != nil {
		return err
	}
	theme := s.Theme()
	g.printf("%s is valid: %q, %d locale(s), %d extension(s), %d nav item(s)\n",
		root.Config, s.Identity().Title, len(s.Locales().Supported), len(s.Extensions()), len(theme.Navbar.Items))
	return nil
}
