package testutil

import (
	"fmt"
	"strings"
)

// RuleDoc builds rule documents declaratively. Categories and commands keep
// the order they were added in.
type RuleDoc struct {
	language    string
	version     string
	description string

	categories []string
	rules      map[string][]string

	commands [][2]string
}

// NewRuleDoc starts a document for language
func NewRuleDoc(language string) *RuleDoc {
	return &RuleDoc{
		language: language,
		rules:    make(map[string][]string),
	}
}

// Version sets metadata.version
func (d *RuleDoc) Version(v string) *RuleDoc {
	d.version = v
	return d
}

// Description sets metadata.description
func (d *RuleDoc) Description(s string) *RuleDoc {
	d.description = s
	return d
}

// Rules appends rules to a category
func (d *RuleDoc) Rules(category string, rules ...string) *RuleDoc {
	if _, ok := d.rules[category]; !ok {
		d.categories = append(d.categories, category)
	}
	d.rules[category] = append(d.rules[category], rules...)
	return d
}

// Command adds a named command line
func (d *RuleDoc) Command(name, line string) *RuleDoc {
	d.commands = append(d.commands, [2]string{name, line})
	return d
}

// TOML renders the document
func (d *RuleDoc) TOML() string {
	var b strings.Builder

	b.WriteString("[metadata]\n")
	if d.language != "" {
		fmt.Fprintf(&b, "language = %q\n", d.language)
	}
	if d.version != "" {
		fmt.Fprintf(&b, "version = %q\n", d.version)
	}
	if d.description != "" {
		fmt.Fprintf(&b, "description = %q\n", d.description)
	}

	b.WriteString("\n[rules]\n")
	for _, cat := range d.categories {
		quoted := make([]string, len(d.rules[cat]))
		for i, r := range d.rules[cat] {
			quoted[i] = fmt.Sprintf("%q", r)
		}
		fmt.Fprintf(&b, "%s = [%s]\n", cat, strings.Join(quoted, ", "))
	}

	if len(d.commands) > 0 {
		b.WriteString("\n[commands]\n")
		for _, c := range d.commands {
			fmt.Fprintf(&b, "%s = %q\n", c[0], c[1])
		}
	}

	return b.String()
}
