// Package settings resolves promptgen's own defaults: which providers to
// generate, where to write them, how to report and how many to generate at
// once. These are distinct from the rule document being rendered.
package settings
