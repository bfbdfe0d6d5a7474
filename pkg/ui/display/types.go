// Package display holds the render-ready view of command results. Every
// output format renders these types, so text, terminal and JSON output
// always agree on content and order.
package display

import (
	"fmt"

	"github.com/arthur-debert/promptgen/pkg/generate"
	"github.com/arthur-debert/promptgen/pkg/providers"
)

// File statuses
const (
	StatusWritten = "written"
	StatusUnknown = "unknown"
	StatusFailed  = "failed"
)

// Console lines
const (
	MsgGenerated       = "Generated: %s"
	MsgUnknownProvider = "Warning: Unknown provider '%s', skipping"
	MsgFailed          = "Error generating %s: %s"
	MsgSummary         = "Successfully generated %d prompt files in %s"
)

// GenerateResult is the outcome of one generate run
type GenerateResult struct {
	Command   string        `json:"command"`
	OutputDir string        `json:"outputDir"`
	Files     []DisplayFile `json:"files"`
	Written   int           `json:"written"`
}

// DisplayFile is one requested provider
type DisplayFile struct {
	Provider string `json:"provider"`
	Path     string `json:"path,omitempty"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// FromReport converts a generate report, keeping request order
func FromReport(r *generate.Report) *GenerateResult {
	result := &GenerateResult{
		Command:   "generate",
		OutputDir: r.OutputDir,
		Files:     make([]DisplayFile, 0, len(r.Results)),
		Written:   r.Written(),
	}

	for _, res := range r.Results {
		f := DisplayFile{Provider: res.Provider, Path: res.Path, Status: StatusWritten}
		switch {
		case res.Unknown():
			f.Status = StatusUnknown
		case res.Failed():
			f.Status = StatusFailed
			f.Message = res.Err.Error()
		}
		result.Files = append(result.Files, f)
	}

	return result
}

// Line returns the console line for f
func (f DisplayFile) Line() string {
	switch f.Status {
	case StatusUnknown:
		return fmt.Sprintf(MsgUnknownProvider, f.Provider)
	case StatusFailed:
		return fmt.Sprintf(MsgFailed, f.Provider, f.Message)
	default:
		return fmt.Sprintf(MsgGenerated, f.Path)
	}
}

// Summary returns the closing line of a generate run
func (r *GenerateResult) Summary() string {
	return fmt.Sprintf(MsgSummary, r.Written, r.OutputDir)
}

// ProviderInfo describes one available provider
type ProviderInfo struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

// ProviderList is the result of the providers command
type ProviderList struct {
	Providers []ProviderInfo `json:"providers"`
}

// ListProviders describes every provider in declaration order
func ListProviders() *ProviderList {
	list := &ProviderList{}
	for _, d := range providers.All() {
		list.Providers = append(list.Providers, ProviderInfo{Key: d.Key, Path: d.PathTemplate})
	}
	return list
}
