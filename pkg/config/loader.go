package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/promptgen/pkg/category"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/logging"
	"github.com/arthur-debert/promptgen/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Format is the on-disk syntax of a configuration document
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// FormatForPath picks the document format from the file extension.
// Anything that is not .yaml or .yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// rawDocument is the decoded shape shared by the TOML and YAML parsers
type rawDocument struct {
	Metadata struct {
		Language    string      `toml:"language" yaml:"language"`
		Version     interface{} `toml:"version" yaml:"version"`
		Description string      `toml:"description" yaml:"description"`
		Globs       []string    `toml:"globs" yaml:"globs"`
	} `toml:"metadata" yaml:"metadata"`
	Rules    map[string][]string `toml:"rules" yaml:"rules"`
	Commands map[string]string   `toml:"commands" yaml:"commands"`
}

// Load reads and parses the configuration document at path.
//
// A missing file yields ErrConfigNotFound, a syntax or type error yields
// ErrConfigParse and a document without a language yields ErrConfigInvalid.
// The only side effect is reading the file.
func Load(fsys types.FS, path string) (*Document, error) {
	logger := logging.GetLogger("config.loader")

	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound,
				"configuration file not found: %s", path).WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"cannot access configuration file %s", path).WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrConfigNotFound,
			"configuration path is a directory: %s", path).WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to read configuration file %s", path).WithDetail("path", path)
	}

	format := FormatForPath(path)
	logger.Debug().
		Str("path", path).
		Str("format", format.String()).
		Int("bytes", len(data)).
		Msg("Loading configuration document")

	doc, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Str("language", doc.Language()).
		Int("categories", len(doc.Rules)).
		Int("commands", doc.Commands.Len()).
		Msg("Configuration loaded")

	return doc, nil
}

// Parse decodes a document from memory
func Parse(data []byte, format Format) (*Document, error) {
	var (
		raw   rawDocument
		order []string
		err   error
	)

	switch format {
	case FormatYAML:
		raw, order, err = decodeYAML(data)
	default:
		raw, order, err = decodeTOML(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse %s configuration", format)
	}

	return build(raw, order)
}

func build(raw rawDocument, commandOrder []string) (*Document, error) {
	logger := logging.GetLogger("config.loader")

	language := strings.TrimSpace(raw.Metadata.Language)
	if language == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "metadata.language is required")
	}
	// The language names the cursor-modern rule file.
	if strings.ContainsAny(language, `/\`) || strings.Contains(language, "..") {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"metadata.language %q must not contain path separators or '..'", language).
			WithDetail("language", language)
	}

	for _, pattern := range raw.Metadata.Globs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"metadata.globs contains an invalid pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}

	doc := &Document{
		Metadata: Metadata{
			Language:    language,
			Version:     scalarString(raw.Metadata.Version),
			Description: raw.Metadata.Description,
			Globs:       raw.Metadata.Globs,
		},
		Rules: make(map[category.Category][]string),
		Extra: make(map[string][]string),
	}

	names := make([]string, 0, len(raw.Rules))
	for name := range raw.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rules := raw.Rules[name]
		if c, ok := category.Parse(name); ok {
			doc.Rules[c] = rules
			continue
		}
		doc.Extra[name] = rules
		logger.Warn().
			Str("category", name).
			Int("rules", len(rules)).
			Msg("Unrecognized rule category, its rules will not be rendered")
	}

	doc.Commands = orderedCommands(raw.Commands, commandOrder)

	return doc, nil
}

// orderedCommands lays out the decoded command map in document order.
// Names the order scan did not see are appended alphabetically.
func orderedCommands(lines map[string]string, order []string) Commands {
	var cmds []Command
	seen := make(map[string]bool, len(lines))

	for _, name := range order {
		line, ok := lines[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		cmds = append(cmds, Command{Name: name, Line: line})
	}

	var rest []string
	for name := range lines {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		cmds = append(cmds, Command{Name: name, Line: lines[name]})
	}

	return NewCommands(cmds...)
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
