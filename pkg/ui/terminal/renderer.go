// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/promptgen/pkg/ui/display"
	"github.com/arthur-debert/promptgen/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// statusStyle maps a file status to the style of its line
func statusStyle(status string) lipgloss.Style {
	switch status {
	case display.StatusUnknown:
		return styles.GetStyle("Warning")
	case display.StatusFailed:
		return styles.GetStyle("Error")
	default:
		return styles.GetStyle("Success")
	}
}

func (r *Renderer) renderFile(f display.DisplayFile) error {
	style := statusStyle(f.Status)

	var line string
	switch f.Status {
	case display.StatusUnknown:
		line = style.Render(f.Line())
	case display.StatusFailed:
		line = style.Render(fmt.Sprintf("Error generating %s:", f.Provider)) + " " + f.Message
	default:
		line = style.Render("Generated:") + " " + styles.GetStyle("FilePath").Render(f.Path)
	}

	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.GenerateResult:
		for _, f := range v.Files {
			if err := r.renderFile(f); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(r.output, styles.GetStyle("Summary").Render(v.Summary()))
		return err
	case *display.ProviderList:
		key := styles.GetStyle("Provider").Width(16)
		path := styles.GetStyle("Muted")
		for _, p := range v.Providers {
			if _, err := fmt.Fprintln(r.output, key.Render(p.Key)+" "+path.Render(p.Path)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with error styling
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
