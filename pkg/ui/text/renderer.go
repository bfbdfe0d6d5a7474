// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/promptgen/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.GenerateResult:
		for _, f := range v.Files {
			if _, err := fmt.Fprintln(r.output, f.Line()); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(r.output, "\n%s\n", v.Summary())
		return err
	case *display.ProviderList:
		for _, p := range v.Providers {
			if _, err := fmt.Fprintf(r.output, "%-16s %s\n", p.Key, p.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
