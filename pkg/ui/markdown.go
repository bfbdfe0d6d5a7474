package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownFiles are the provider files whose body is markdown
var markdownFiles = map[string]bool{
	".md":          true,
	".mdc":         true,
	".cursorrules": true,
}

// IsMarkdown reports whether the provider file at path holds markdown
func IsMarkdown(path string) bool {
	base := filepath.Base(path)
	return markdownFiles[base] || markdownFiles[filepath.Ext(base)]
}

// MarkdownRenderer uses glamour to render provider documents on a terminal
type MarkdownRenderer struct {
	Style string // "auto", a glamour style name such as "dark" or "notty", or a style file
	Width int    // Word wrap column (0 = glamour default)
}

// NewMarkdownRenderer creates a renderer with automatic style detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render returns content rendered for the terminal. A leading front-matter
// block is kept verbatim; glamour would fold it into the first paragraph.
// Non-markdown files and renderer failures return content unchanged.
func (r *MarkdownRenderer) Render(content, path string) string {
	if !IsMarkdown(path) {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	front, body := splitFrontMatter(content)
	rendered, err := renderer.Render(body)
	if err != nil {
		return content
	}

	return front + rendered
}

// splitFrontMatter separates a leading "---" delimited block from the rest
func splitFrontMatter(content string) (front, body string) {
	const delim = "---\n"
	if !strings.HasPrefix(content, delim) {
		return "", content
	}
	end := strings.Index(content[len(delim):], "\n"+delim)
	if end < 0 {
		return "", content
	}
	cut := len(delim) + end + len("\n"+delim)
	return content[:cut], content[cut:]
}
