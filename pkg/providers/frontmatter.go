package providers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/promptgen/pkg/config"
	"gopkg.in/yaml.v3"
)

// languageGlobs maps a language name to the file patterns its rules apply to
var languageGlobs = map[string][]string{
	"Python":     {"*.py", "*.pyi"},
	"Rust":       {"*.rs", "Cargo.toml", "Cargo.lock"},
	"Go":         {"*.go", "go.mod", "go.sum"},
	"TypeScript": {"*.ts", "*.tsx"},
	"JavaScript": {"*.js", "*.jsx", "*.mjs"},
}

// Globs returns the file patterns for doc's language. An explicit
// metadata.globs list wins; unknown languages fall back to *.<language>.
func Globs(doc *config.Document) []string {
	if len(doc.Metadata.Globs) > 0 {
		return append([]string(nil), doc.Metadata.Globs...)
	}
	if globs, ok := languageGlobs[doc.Language()]; ok {
		return append([]string(nil), globs...)
	}
	return []string{"*." + doc.LanguageLower()}
}

type frontMatterBlock struct {
	Description string   `yaml:"description"`
	Globs       []string `yaml:"globs,flow"`
	AlwaysApply bool     `yaml:"alwaysApply"`
}

func description(doc *config.Document) string {
	if doc.Metadata.Description != "" {
		return doc.Metadata.Description
	}
	return fmt.Sprintf("%s development rules", doc.Language())
}

// frontMatter emits the YAML block delimited by --- lines
func (b *builder) frontMatter(doc *config.Document) error {
	out, err := yaml.Marshal(frontMatterBlock{
		Description: description(doc),
		Globs:       Globs(doc),
		AlwaysApply: true,
	})
	if err != nil {
		return fmt.Errorf("failed to encode front-matter: %w", err)
	}

	b.line("---")
	b.line(strings.Split(strings.TrimRight(string(out), "\n"), "\n")...)
	b.line("---", "")
	return nil
}
