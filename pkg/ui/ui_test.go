package ui_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/generate"
	"github.com/arthur-debert/promptgen/pkg/ui"
	"github.com/arthur-debert/promptgen/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *display.GenerateResult {
	return display.FromReport(&generate.Report{
		OutputDir: "out",
		Results: []generate.Result{
			{Provider: "cursor-legacy", Path: "/abs/out/.cursorrules"},
			{Provider: "not-a-real-provider", Err: errors.New(errors.ErrUnknownProvider, "unknown provider 'not-a-real-provider'")},
			{Provider: "gemini", Path: "/abs/out/GEMINI.md", Err: errors.New(errors.ErrFileWrite, "disk full")},
			{Provider: "claude", Path: "/abs/out/CLAUDE.md"},
		},
	})
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "terminal", format: ui.FormatTerminal},
		{name: "text", format: ui.FormatText},
		{name: "json", format: ui.FormatJSON},
		{name: "auto with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestTextRendererGenerateResult(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))

	want := strings.Join([]string{
		"Generated: /abs/out/.cursorrules",
		"Warning: Unknown provider 'not-a-real-provider', skipping",
		"Error generating gemini: [FILE_WRITE] disk full",
		"Generated: /abs/out/CLAUDE.md",
		"",
		"Successfully generated 2 prompt files in out",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTerminalRendererGenerateResult(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "/abs/out/.cursorrules")
	assert.Contains(t, out, "not-a-real-provider")
	assert.Contains(t, out, "[FILE_WRITE] disk full")
	assert.Contains(t, out, "Successfully generated 2 prompt files in out")
}

func TestJSONRendererGenerateResult(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))

	var got display.GenerateResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "generate", got.Command)
	assert.Equal(t, 2, got.Written)
	require.Len(t, got.Files, 4)
	assert.Equal(t, display.StatusWritten, got.Files[0].Status)
	assert.Equal(t, display.StatusUnknown, got.Files[1].Status)
	assert.Empty(t, got.Files[1].Path)
	assert.Equal(t, display.StatusFailed, got.Files[2].Status)
	assert.Equal(t, "[FILE_WRITE] disk full", got.Files[2].Message)
}

func TestRenderProviderList(t *testing.T) {
	list := display.ListProviders()
	require.Len(t, list.Providers, 5)

	var text bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatText, &text)
	require.NoError(t, err)
	require.NoError(t, renderer.RenderResult(list))
	lines := strings.Split(strings.TrimSuffix(text.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, fmt.Sprintf("%-16s %s", "cursor-modern", ".cursor/rules/{language}.mdc"), lines[2])

	var js bytes.Buffer
	renderer, err = ui.NewRenderer(ui.FormatJSON, &js)
	require.NoError(t, err)
	require.NoError(t, renderer.RenderResult(list))
	var got display.ProviderList
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	assert.Equal(t, "CLAUDE.md", got.Providers[4].Path)
}

func TestRenderError(t *testing.T) {
	cause := errors.New(errors.ErrConfigNotFound, "configuration file not found").
		WithDetail("path", "missing.toml")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := ui.NewRenderer(ui.FormatText, &buf)
		require.NoError(t, err)
		require.NoError(t, renderer.RenderError(cause))
		assert.Equal(t, "Error: [CONFIG_NOT_FOUND] configuration file not found\n", buf.String())
	})

	t.Run("json carries code and details", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
		require.NoError(t, err)
		require.NoError(t, renderer.RenderError(cause))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "CONFIG_NOT_FOUND", got["code"])
		assert.Equal(t, map[string]interface{}{"path": "missing.toml"}, got["details"])
	})

	t.Run("json plain error", func(t *testing.T) {
		var buf bytes.Buffer
		renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
		require.NoError(t, err)
		require.NoError(t, renderer.RenderError(fmt.Errorf("boom")))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, map[string]interface{}{"error": "boom"}, got)
	})
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, renderer.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}
