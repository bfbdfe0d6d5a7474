// pkg/generate/generate_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: in-memory filesystem, real provider renderers
// PURPOSE: Test batch generation, failure isolation and atomic writes

package generate

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/promptgen/pkg/category"
	"github.com/arthur-debert/promptgen/pkg/config"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/filesystem"
	"github.com/arthur-debert/promptgen/pkg/providers"
	"github.com/arthur-debert/promptgen/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outDir = "/out"

func testDoc() *config.Document {
	return &config.Document{
		Metadata: config.Metadata{Language: "Python", Version: "3.12"},
		Rules: map[category.Category][]string{
			category.Core:    {"Use type hints"},
			category.Testing: {"Use pytest"},
		},
		Commands: config.NewCommands(config.Command{Name: "lint", Line: "ruff check"}),
	}
}

// failingFS fails writes whose target contains match
type failingFS struct {
	types.FS
	match string
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if strings.Contains(name, f.match) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.WriteFile(name, data, perm)
}

// captureLogs redirects the global logger for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func countLevel(buf *bytes.Buffer, level string) int {
	return strings.Count(buf.String(), `"level":"`+level+`"`)
}

func exists(t *testing.T, fsys types.FS, path string) bool {
	t.Helper()
	_, err := fsys.Stat(path)
	return err == nil
}

func TestGenerateAllProviders(t *testing.T) {
	fsys := filesystem.NewMemoryFS()

	report, err := Generate(context.Background(), Options{Doc: testDoc(), OutputDir: outDir, FS: fsys})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Written())
	assert.Empty(t, report.Unknown())
	assert.Empty(t, report.Failed())

	var got []string
	for _, res := range report.Results {
		got = append(got, res.Provider)
	}
	assert.Equal(t, providers.Keys(), got)

	for _, rel := range []string{
		".github/copilot-instructions.md",
		".cursorrules",
		".cursor/rules/python.mdc",
		"GEMINI.md",
		"CLAUDE.md",
	} {
		path := filepath.Join(outDir, filepath.FromSlash(rel))
		assert.True(t, exists(t, fsys, path), "expected %s", path)
		assert.False(t, exists(t, fsys, tempPath(path)), "temp file left behind for %s", path)
	}
}

func TestGenerateWritesRenderedText(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	doc := testDoc()

	_, err := Generate(context.Background(), Options{
		Doc: doc, OutputDir: outDir, FS: fsys, Providers: []string{"claude"},
	})
	require.NoError(t, err)

	want, err := providers.Render(providers.Claude, doc)
	require.NoError(t, err)

	got, err := fsys.ReadFile(filepath.Join(outDir, "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestGenerateFailureIsolation(t *testing.T) {
	logs := captureLogs(t)
	fsys := filesystem.NewMemoryFS()

	report, err := Generate(context.Background(), Options{
		Doc:       testDoc(),
		OutputDir: outDir,
		FS:        fsys,
		Providers: []string{"cursor-legacy", "not-a-real-provider", "claude"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Written())
	assert.True(t, exists(t, fsys, filepath.Join(outDir, ".cursorrules")))
	assert.True(t, exists(t, fsys, filepath.Join(outDir, "CLAUDE.md")))
	assert.False(t, exists(t, fsys, filepath.Join(outDir, "GEMINI.md")))

	unknown := report.Unknown()
	require.Len(t, unknown, 1)
	assert.Equal(t, "not-a-real-provider", unknown[0].Provider)
	assert.Empty(t, unknown[0].Path)
	assert.Equal(t, 1, countLevel(logs, "warn"))
	assert.Equal(t, 0, countLevel(logs, "error"))
}

func TestGenerateWriteFailureIsIsolated(t *testing.T) {
	logs := captureLogs(t)
	fsys := &failingFS{FS: filesystem.NewMemoryFS(), match: "GEMINI"}

	report, err := Generate(context.Background(), Options{
		Doc:       testDoc(),
		OutputDir: outDir,
		FS:        fsys,
		Providers: []string{"gemini", "claude"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Written())
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "gemini", failed[0].Provider)
	assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrFileWrite))
	assert.ErrorIs(t, failed[0].Err, fs.ErrPermission)

	assert.False(t, exists(t, fsys, filepath.Join(outDir, "GEMINI.md")))
	assert.True(t, exists(t, fsys, filepath.Join(outDir, "CLAUDE.md")))
	assert.Equal(t, 1, countLevel(logs, "error"))
}

func TestGenerateStaysInsideOutputDir(t *testing.T) {
	logs := captureLogs(t)
	fsys := filesystem.NewMemoryFS()
	root := "/a/b/out"

	doc := testDoc()
	doc.Metadata.Language = "../../../escaped"

	report, err := Generate(context.Background(), Options{
		Doc:       doc,
		OutputDir: root,
		FS:        fsys,
		Providers: []string{"cursor-modern", "claude"},
	})
	require.NoError(t, err)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "cursor-modern", failed[0].Provider)
	assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrFileWrite))

	assert.False(t, exists(t, fsys, "/a/b/escaped.mdc"))
	assert.True(t, exists(t, fsys, filepath.Join(root, "CLAUDE.md")))
	assert.Equal(t, 1, countLevel(logs, "error"))
}

func TestWithin(t *testing.T) {
	assert.True(t, within("/out", "/out/CLAUDE.md"))
	assert.True(t, within("/out", "/out/.cursor/rules/go.mdc"))
	assert.True(t, within("/out", "/out/..hidden"))
	assert.False(t, within("/out", "/escaped.mdc"))
	assert.False(t, within("/out/rules", "/out"))
}

func TestGenerateFailedWriteKeepsPreviousFile(t *testing.T) {
	mem := filesystem.NewMemoryFS()
	target := filepath.Join(outDir, "GEMINI.md")
	require.NoError(t, mem.MkdirAll(outDir, 0755))
	require.NoError(t, mem.WriteFile(target, []byte("previous"), 0644))

	report, err := Generate(context.Background(), Options{
		Doc:       testDoc(),
		OutputDir: outDir,
		FS:        &failingFS{FS: mem, match: "GEMINI"},
		Providers: []string{"gemini"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written())

	got, err := mem.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
}

func TestGenerateOverwritesExistingFile(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	target := filepath.Join(outDir, "CLAUDE.md")
	require.NoError(t, fsys.MkdirAll(outDir, 0755))
	require.NoError(t, fsys.WriteFile(target, []byte("stale"), 0644))

	report, err := Generate(context.Background(), Options{
		Doc: testDoc(), OutputDir: outDir, FS: fsys, Providers: []string{"claude"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written())

	got, err := fsys.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "# Python Project Configuration\n"))
}

func TestGenerateRecoversRendererPanic(t *testing.T) {
	prev := renderDocument
	renderDocument = func(d providers.Descriptor, doc *config.Document) (string, error) {
		if d.Kind == providers.Gemini {
			panic("boom")
		}
		return d.Render(doc)
	}
	t.Cleanup(func() { renderDocument = prev })

	fsys := filesystem.NewMemoryFS()
	report, err := Generate(context.Background(), Options{
		Doc:       testDoc(),
		OutputDir: outDir,
		FS:        fsys,
		Providers: []string{"gemini", "cursor-legacy"},
	})
	require.NoError(t, err)

	require.Len(t, report.Failed(), 1)
	assert.True(t, errors.IsErrorCode(report.Failed()[0].Err, errors.ErrRender))
	assert.Contains(t, report.Failed()[0].Err.Error(), "boom")
	assert.True(t, exists(t, fsys, filepath.Join(outDir, ".cursorrules")))
	assert.False(t, exists(t, fsys, filepath.Join(outDir, "GEMINI.md")))
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	seqFS := filesystem.NewMemoryFS()
	parFS := filesystem.NewMemoryFS()

	seq, err := Generate(context.Background(), Options{Doc: testDoc(), OutputDir: outDir, FS: seqFS})
	require.NoError(t, err)
	par, err := Generate(context.Background(), Options{Doc: testDoc(), OutputDir: outDir, FS: parFS, Jobs: 4})
	require.NoError(t, err)

	require.Equal(t, len(seq.Results), len(par.Results))
	for i := range seq.Results {
		assert.Equal(t, seq.Results[i].Provider, par.Results[i].Provider)
		assert.Equal(t, seq.Results[i].Path, par.Results[i].Path)

		want, err := seqFS.ReadFile(seq.Results[i].Path)
		require.NoError(t, err)
		got, err := parFS.ReadFile(par.Results[i].Path)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestGenerateDeduplicatesKeys(t *testing.T) {
	report, err := Generate(context.Background(), Options{
		Doc:       testDoc(),
		OutputDir: outDir,
		FS:        filesystem.NewMemoryFS(),
		Providers: []string{"claude", "gemini", "claude"},
		Jobs:      2,
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Written())
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := filesystem.NewMemoryFS()
	report, err := Generate(ctx, Options{Doc: testDoc(), OutputDir: outDir, FS: fsys})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Written())
	assert.False(t, exists(t, fsys, filepath.Join(outDir, "CLAUDE.md")))
}

func TestGenerateInvalidOptions(t *testing.T) {
	_, err := Generate(context.Background(), Options{FS: filesystem.NewMemoryFS()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Generate(context.Background(), Options{Doc: testDoc()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFatalLoadCreatesNoFiles(t *testing.T) {
	fsys := filesystem.NewMemoryFS()

	doc, err := config.Load(fsys, "/missing/config.toml")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))

	_, err = fsys.Stat(outDir)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
