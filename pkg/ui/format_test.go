package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{
			name:     "auto format",
			format:   ui.FormatAuto,
			expected: "auto",
		},
		{
			name:     "terminal format",
			format:   ui.FormatTerminal,
			expected: "term",
		},
		{
			name:     "text format",
			format:   ui.FormatText,
			expected: "text",
		},
		{
			name:     "json format",
			format:   ui.FormatJSON,
			expected: "json",
		},
		{
			name:     "unknown format",
			format:   ui.Format(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{
			name:     "parse auto",
			input:    "auto",
			expected: ui.FormatAuto,
			wantErr:  false,
		},
		{
			name:     "parse empty string as auto",
			input:    "",
			expected: ui.FormatAuto,
			wantErr:  false,
		},
		{
			name:     "parse term",
			input:    "term",
			expected: ui.FormatTerminal,
			wantErr:  false,
		},
		{
			name:     "parse terminal",
			input:    "terminal",
			expected: ui.FormatTerminal,
			wantErr:  false,
		},
		{
			name:     "parse text",
			input:    "text",
			expected: ui.FormatText,
			wantErr:  false,
		},
		{
			name:     "parse plain",
			input:    "plain",
			expected: ui.FormatText,
			wantErr:  false,
		},
		{
			name:     "parse json",
			input:    "json",
			expected: ui.FormatJSON,
			wantErr:  false,
		},
		{
			name:     "parse invalid format",
			input:    "invalid",
			expected: ui.FormatAuto,
			wantErr:  true,
		},
		{
			name:     "parse uppercase term",
			input:    "TERM",
			expected: ui.FormatTerminal,
			wantErr:  false,
		},
		{
			name:     "parse mixed case JSON",
			input:    "Json",
			expected: ui.FormatJSON,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, format)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("regular file is text", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.False(t, ui.IsTerminal(f))
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, &buf))
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &buf))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, &buf))
}

func TestParseFormatErrorCode(t *testing.T) {
	_, err := ui.ParseFormat("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "auto, term, text, json")
}
