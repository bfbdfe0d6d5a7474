// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/promptgen/pkg/errors"
)

// errorObject is the JSON shape of a failed command
type errorObject struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON. Structured errors carry their code
// and details.
func (r *Renderer) RenderError(err error) error {
	obj := errorObject{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj.Code = code
		obj.Details = errors.GetErrorDetails(err)
	}
	return r.encoder.Encode(obj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
