package providers

import (
	"fmt"

	"github.com/arthur-debert/promptgen/pkg/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// copilotCommand is a fixed command bullet. When the document has commands
// but none with that name the placeholder is written instead.
type copilotCommand struct {
	name        string
	placeholder string
	format      string
}

var copilotCommands = []copilotCommand{
	{name: "format", placeholder: "format-command", format: "Run `%s` to format code"},
	{name: "lint", placeholder: "lint-command", format: "Run `%s` to lint code"},
	{name: "test", placeholder: "test-command", format: "Run `%s` to run tests"},
}

const copilotTypecheckFormat = "Run `%s` for type checking"

func copilotVersionBullet(doc *config.Document) []string {
	if doc.Metadata.Version == "" {
		return nil
	}
	return []string{fmt.Sprintf("- Use %s %s syntax and features", doc.Language(), doc.Metadata.Version)}
}

// copilotCommandBullets is empty when the document has no commands table
func copilotCommandBullets(doc *config.Document) []string {
	if doc.Commands.Len() == 0 {
		return nil
	}

	var out []string
	for _, c := range copilotCommands {
		out = append(out, "- "+fmt.Sprintf(c.format, doc.Commands.GetOr(c.name, c.placeholder)))
	}
	if line, ok := doc.Commands.Get("typecheck"); ok {
		out = append(out, "- "+fmt.Sprintf(copilotTypecheckFormat, line))
	}
	return out
}

// buildCommands lists every command of the document in document order.
// Nothing is written when the document has no commands.
func buildCommands(doc *config.Document) []string {
	if doc.Commands.Len() == 0 {
		return nil
	}

	// Casers are stateful; each render gets its own.
	title := cases.Title(language.Und)
	lang := doc.LanguageLower()

	out := []string{"## Build Commands"}
	for _, cmd := range doc.Commands.All() {
		out = append(out, fmt.Sprintf("- `%s` - %s %s code", cmd.Line, title.String(cmd.Name), lang))
	}
	return append(out, "")
}
