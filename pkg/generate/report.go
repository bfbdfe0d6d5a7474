package generate

import (
	"github.com/arthur-debert/promptgen/pkg/errors"
)

// Result is the outcome of generating one requested provider
type Result struct {
	// Provider is the key as it was requested.
	Provider string
	// Path is the file the provider writes to. Empty for unknown providers.
	Path string
	// Err is nil when the file was written.
	Err error
}

// Written reports whether the provider's file was written
func (r Result) Written() bool {
	return r.Err == nil
}

// Unknown reports whether the requested key names no provider
func (r Result) Unknown() bool {
	return errors.IsErrorCode(r.Err, errors.ErrUnknownProvider)
}

// Failed reports whether a known provider failed to render or write
func (r Result) Failed() bool {
	return r.Err != nil && !r.Unknown()
}

// Report collects one Result per requested provider, in request order
type Report struct {
	OutputDir string
	Results   []Result
}

// Written returns the number of files written
func (r *Report) Written() int {
	n := 0
	for _, res := range r.Results {
		if res.Written() {
			n++
		}
	}
	return n
}

// Unknown returns the results for keys that name no provider
func (r *Report) Unknown() []Result {
	return r.filter(Result.Unknown)
}

// Failed returns the results for providers that failed to render or write
func (r *Report) Failed() []Result {
	return r.filter(Result.Failed)
}

func (r *Report) filter(keep func(Result) bool) []Result {
	var out []Result
	for _, res := range r.Results {
		if keep(res) {
			out = append(out, res)
		}
	}
	return out
}
