package config

import (
	"strings"

	"github.com/arthur-debert/promptgen/pkg/category"
)

// Metadata describes the language the rules apply to
type Metadata struct {
	Language    string
	Version     string
	Description string
	// Globs overrides the file patterns written into front-matter blocks.
	Globs []string
}

// Document is the in-memory configuration model
type Document struct {
	Metadata Metadata

	// Rules maps recognized categories to their rule strings in document
	// order. Absent categories are simply missing from the map.
	Rules map[category.Category][]string

	// Extra keeps rule groups whose key is not a recognized category.
	// No renderer reads them.
	Extra map[string][]string

	Commands Commands
}

// RulesFor concatenates the rules of the given categories in argument order
func (d *Document) RulesFor(cats ...category.Category) []string {
	var out []string
	for _, c := range cats {
		out = append(out, d.Rules[c]...)
	}
	return out
}

// Language returns the configured language name
func (d *Document) Language() string {
	return d.Metadata.Language
}

// LanguageLower returns the language name lower-cased, as used in file
// names and command descriptions
func (d *Document) LanguageLower() string {
	return strings.ToLower(d.Metadata.Language)
}
