package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/promptgen/pkg/config"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/registry"
)

// languagePlaceholder is replaced by the lower-cased language in path templates
const languagePlaceholder = "{language}"

// layout is the static shape of one provider's document
type layout struct {
	frontMatter bool
	// title is a format string receiving the language name.
	title    string
	preamble func(*config.Document) []string
	sections func(*config.Document) []Section
	footer   func(*config.Document) []string
}

// Descriptor is the compile-time description of a provider
type Descriptor struct {
	Kind Kind
	Key  string
	// PathTemplate is slash-separated and relative to the output root.
	PathTemplate string

	layout layout
}

// OutputPath resolves the descriptor's path template for doc, relative to
// the output root and in OS form
func (d Descriptor) OutputPath(doc *config.Document) string {
	p := strings.ReplaceAll(d.PathTemplate, languagePlaceholder, doc.LanguageLower())
	return filepath.FromSlash(p)
}

// Render produces the provider's document text for doc
func (d Descriptor) Render(doc *config.Document) (string, error) {
	if doc == nil || doc.Language() == "" {
		return "", errors.Newf(errors.ErrRender, "%s: document has no language", d.Key)
	}

	var b builder
	l := d.layout

	if l.frontMatter {
		if err := b.frontMatter(doc); err != nil {
			return "", errors.Wrapf(err, errors.ErrRender, "%s: front-matter", d.Key)
		}
	}

	b.line(fmt.Sprintf(l.title, doc.Language()), "")

	if l.preamble != nil {
		b.line(l.preamble(doc)...)
	}

	for _, s := range l.sections(doc) {
		b.section(s, doc)
	}

	if l.footer != nil {
		b.line(l.footer(doc)...)
	}

	return b.String(), nil
}

var descriptors = registry.New[Descriptor]()

func init() {
	for _, d := range []Descriptor{
		{
			Kind:         GithubCopilot,
			PathTemplate: ".github/copilot-instructions.md",
			layout: layout{
				title:    "# GitHub Copilot Instructions for %s Project",
				preamble: copilotVersionBullet,
				sections: copilotSections,
				footer:   copilotCommandBullets,
			},
		},
		{
			Kind:         CursorLegacy,
			PathTemplate: ".cursorrules",
			layout: layout{
				title:    "# %s Development Rules",
				sections: cursorLegacySections,
			},
		},
		{
			Kind:         CursorModern,
			PathTemplate: ".cursor/rules/" + languagePlaceholder + ".mdc",
			layout: layout{
				frontMatter: true,
				title:       "# %s Development Guidelines",
				sections:    cursorModernSections,
			},
		},
		{
			Kind:         Gemini,
			PathTemplate: "GEMINI.md",
			layout: layout{
				title:    "# %s Project Configuration",
				sections: geminiSections,
				footer:   buildCommands,
			},
		},
		{
			Kind:         Claude,
			PathTemplate: "CLAUDE.md",
			layout: layout{
				title:    "# %s Project Configuration",
				sections: claudeSections,
				footer:   buildCommands,
			},
		},
	} {
		d.Key = d.Kind.Key()
		registry.MustRegister(descriptors, d.Key, d)
	}
}

// Lookup returns the descriptor registered under key. An unknown key
// yields ErrUnknownProvider.
func Lookup(key string) (Descriptor, error) {
	d, err := descriptors.Get(key)
	if err != nil {
		return Descriptor{}, errors.Wrapf(err, errors.ErrUnknownProvider,
			"unknown provider '%s'", key).WithDetail("provider", key)
	}
	return d, nil
}

// Keys returns every provider key in declaration order
func Keys() []string {
	return descriptors.List()
}

// All returns every descriptor in declaration order
func All() []Descriptor {
	out := make([]Descriptor, 0, len(kindKeys))
	for _, kind := range Kinds() {
		if d, ok := descriptorFor(kind); ok {
			out = append(out, d)
		}
	}
	return out
}

func descriptorFor(kind Kind) (Descriptor, bool) {
	d, err := descriptors.Get(kind.Key())
	return d, err == nil
}

// Render produces the document text of provider kind for doc
func Render(kind Kind, doc *config.Document) (string, error) {
	d, ok := descriptorFor(kind)
	if !ok {
		return "", errors.Newf(errors.ErrUnknownProvider, "unknown provider kind %d", int(kind))
	}
	return d.Render(doc)
}
