// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Orchestrate isolated test environments

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/promptgen/pkg/filesystem"
	"github.com/arthur-debert/promptgen/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment bundles a filesystem with the directories a test writes to
type TestEnvironment struct {
	// Root holds rule documents and generated output
	Root string

	// XDG directories, only redirected for EnvIsolated
	ConfigHome string
	StateHome  string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/work"
		env.FS = filesystem.NewMemoryFS()
		require.NoError(t, env.FS.MkdirAll(env.Root, 0755))
	case EnvIsolated:
		tempDir := t.TempDir()
		env.Root = filepath.Join(tempDir, "work")
		env.ConfigHome = filepath.Join(tempDir, "config")
		env.StateHome = filepath.Join(tempDir, "state")
		env.FS = filesystem.NewOS()
		require.NoError(t, env.FS.MkdirAll(env.Root, 0755))

		t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
		t.Setenv("XDG_STATE_HOME", env.StateHome)
		t.Setenv("NO_COLOR", "1")
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	return env
}

// Path joins rel onto the environment root
func (e *TestEnvironment) Path(rel ...string) string {
	return filepath.Join(append([]string{e.Root}, rel...)...)
}

// WriteFile writes content below the root, creating parent directories
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()

	path := e.Path(rel)
	require.NoError(e.t, e.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, e.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadFile returns the content of a file below the root
func (e *TestEnvironment) ReadFile(rel string) string {
	e.t.Helper()

	data, err := e.FS.ReadFile(e.Path(rel))
	require.NoError(e.t, err)
	return string(data)
}

// Exists reports whether rel exists below the root
func (e *TestEnvironment) Exists(rel string) bool {
	_, err := e.FS.Stat(e.Path(rel))
	return err == nil
}

// WriteRuleDoc writes doc as TOML under name and returns its path
func (e *TestEnvironment) WriteRuleDoc(name string, doc *RuleDoc) string {
	e.t.Helper()
	return e.WriteFile(name, doc.TOML())
}
