// Package hugo hands an assembled site configuration to Hugo.
//
// Render translates a *site.Site into the generic document Hugo reads as its
// site configuration; Write serializes that document as hugo.yaml, hugo.toml
// or hugo.json. The document is built in phases (core, languages, params,
// user overrides, menu, modules) and never consults anything outside the
// Site it was given, so the same Site always produces the same file.
package hugo
