// Package site assembles the declarative site configuration handed to the
// static-site builder.
//
// Assemble is the only constructor. It copies its inputs, fills builder
// defaults, validates the whole value and either returns a *Site or a single
// InvalidConfiguration error listing every violated rule. A *Site exposes
// read-only accessors that return copies, so a value handed to the builder at
// start-up cannot change underneath it.
package site
