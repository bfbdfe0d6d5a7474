// Package config holds the source-of-truth configuration document and its
// loader.
//
// A document carries metadata (the target language is required), rule
// strings grouped by category, and named tool commands. It is loaded once
// per invocation and treated as read-only afterwards: every provider
// renders from the same *Document.
//
// TOML is the primary on-disk format; YAML documents with the same shape
// are accepted when the file extension is .yaml or .yml.
package config
