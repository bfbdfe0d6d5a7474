package generate

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/promptgen/pkg/config"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/logging"
	"github.com/arthur-debert/promptgen/pkg/providers"
	"github.com/arthur-debert/promptgen/pkg/types"
	"golang.org/x/sync/errgroup"
)

// Options configures a Generate run
type Options struct {
	// Doc is the loaded configuration. Required.
	Doc *config.Document
	// OutputDir is the root every provider path is joined to. Defaults to ".".
	OutputDir string
	// Providers are the requested keys. Empty means every provider.
	Providers []string
	// FS receives the writes. Required.
	FS types.FS
	// Jobs bounds how many providers are generated at once. Values below 1
	// mean one at a time.
	Jobs int
}

// renderDocument is replaced in tests to exercise renderer failures
var renderDocument = func(d providers.Descriptor, doc *config.Document) (string, error) {
	return d.Render(doc)
}

// Generate renders and writes every requested provider. The returned error
// is only non-nil for invalid options; per-provider problems are reported
// in the Report.
func Generate(ctx context.Context, opts Options) (*Report, error) {
	if opts.Doc == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration document")
	}
	if opts.FS == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no filesystem")
	}

	logger := logging.GetLogger("generate")
	defer logging.LogOperationStart(logger, "generate")()

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	root := outputDir
	if abs, err := filepath.Abs(outputDir); err == nil {
		root = abs
	}

	keys := requestedKeys(opts.Providers)
	report := &Report{
		OutputDir: outputDir,
		Results:   make([]Result, len(keys)),
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			report.Results[i] = generateOne(gctx, opts.FS, opts.Doc, root, key)
			return nil
		})
	}
	_ = g.Wait()

	logger.Info().
		Str("output", root).
		Int("requested", len(keys)).
		Int("written", report.Written()).
		Msg("Generation finished")

	return report, nil
}

// requestedKeys defaults to every provider and drops repeated keys so no two
// workers target the same file
func requestedKeys(requested []string) []string {
	if len(requested) == 0 {
		return providers.Keys()
	}

	seen := make(map[string]bool, len(requested))
	var keys []string
	for _, key := range requested {
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

func generateOne(ctx context.Context, fsys types.FS, doc *config.Document, root, key string) Result {
	logger := logging.GetLogger("generate").With().Str("provider", key).Logger()
	res := Result{Provider: key}

	d, err := providers.Lookup(key)
	if err != nil {
		logger.Warn().Msg("Unknown provider, skipping")
		res.Err = err
		return res
	}
	res.Path = filepath.Join(root, d.OutputPath(doc))
	if !within(root, res.Path) {
		res.Err = errors.Newf(errors.ErrFileWrite,
			"%s resolves outside the output directory %s", res.Path, root).
			WithDetail("provider", key).
			WithDetail("path", res.Path)
		logger.Error().Err(res.Err).Msg("Refusing to write provider document")
		return res
	}

	if err := ctx.Err(); err != nil {
		res.Err = errors.Wrap(err, errors.ErrInternal, "generation cancelled")
		return res
	}

	text, err := safeRender(d, doc)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render provider document")
		res.Err = err
		return res
	}

	if err := writeFile(fsys, res.Path, []byte(text)); err != nil {
		logger.Error().Err(err).Str("path", res.Path).Msg("Failed to write provider document")
		res.Err = err
		return res
	}

	logger.Info().Str("path", res.Path).Int("bytes", len(text)).Msg("Wrote provider document")
	return res
}

// within reports whether path lies inside root
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// safeRender turns a renderer panic into an ErrRender error
func safeRender(d providers.Descriptor, doc *config.Document) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.Newf(errors.ErrRender, "%s: renderer panicked: %v", d.Key, r).
				WithDetail("provider", d.Key)
		}
	}()
	return renderDocument(d, doc)
}
