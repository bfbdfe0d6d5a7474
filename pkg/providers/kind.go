package providers

import "fmt"

// Kind identifies one provider variant
type Kind int

const (
	GithubCopilot Kind = iota
	CursorLegacy
	CursorModern
	Gemini
	Claude
)

var kindKeys = [...]string{
	GithubCopilot: "github-copilot",
	CursorLegacy:  "cursor-legacy",
	CursorModern:  "cursor-modern",
	Gemini:        "gemini",
	Claude:        "claude",
}

// Key returns the provider key used on the command line
func (k Kind) Key() string {
	if k < 0 || int(k) >= len(kindKeys) {
		return fmt.Sprintf("provider(%d)", int(k))
	}
	return kindKeys[k]
}

// String implements fmt.Stringer
func (k Kind) String() string {
	return k.Key()
}

// Kinds returns every provider in declaration order
func Kinds() []Kind {
	return []Kind{GithubCopilot, CursorLegacy, CursorModern, Gemini, Claude}
}
