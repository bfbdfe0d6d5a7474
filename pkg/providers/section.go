package providers

import (
	"strings"

	"github.com/arthur-debert/promptgen/pkg/category"
	"github.com/arthur-debert/promptgen/pkg/config"
)

// Mode selects how a section's rules are written
type Mode int

const (
	// ModeBullets writes "## Title", one bullet per rule, then a blank line.
	// The title is written even when there are no rules.
	ModeBullets Mode = iota

	// ModeProse writes "## Title", a blank line, then the rules joined into
	// a single sentence followed by a blank line when there are any.
	ModeProse

	// ModeTitledBullets writes "## Title" and a blank line; bullets and a
	// closing blank line follow only when there are rules, so an empty
	// section is its title alone.
	ModeTitledBullets

	// ModeFlat writes bare bullets with no title and no spacing.
	ModeFlat
)

// Section is one entry of a provider's section plan
type Section struct {
	Title   string
	Sources []category.Category
	Mode    Mode
	// Limit caps how many of the concatenated source rules are used.
	// Zero means unbounded. Rules past the limit are dropped.
	Limit int
}

// Rules returns the rules this section renders from doc, limit applied
func (s Section) Rules(doc *config.Document) []string {
	rules := doc.RulesFor(s.Sources...)
	if s.Limit > 0 && len(rules) > s.Limit {
		rules = rules[:s.Limit]
	}
	return rules
}

// builder accumulates document lines. The finished text is the lines
// joined by newlines and always ends with exactly one newline.
type builder struct {
	lines []string
}

func (b *builder) line(lines ...string) {
	b.lines = append(b.lines, lines...)
}

func (b *builder) bullets(items []string) {
	for _, item := range items {
		b.lines = append(b.lines, "- "+item)
	}
}

func (b *builder) heading(title string) {
	b.lines = append(b.lines, "## "+title)
}

func (b *builder) section(s Section, doc *config.Document) {
	rules := s.Rules(doc)

	switch s.Mode {
	case ModeFlat:
		b.bullets(rules)

	case ModeProse:
		b.heading(s.Title)
		b.line("")
		if len(rules) > 0 {
			b.line(sentence(rules), "")
		}

	case ModeTitledBullets:
		b.heading(s.Title)
		b.line("")
		if len(rules) > 0 {
			b.bullets(rules)
			b.line("")
		}

	default:
		b.heading(s.Title)
		b.bullets(rules)
		b.line("")
	}
}

func (b *builder) String() string {
	lines := b.lines
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// sentence joins rules with spaces and terminates the result with a period
func sentence(rules []string) string {
	s := strings.Join(rules, " ")
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
