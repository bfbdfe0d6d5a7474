package settings

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of environment variables read as settings
	EnvPrefix = "PROMPTGEN_"

	appDirName   = "promptgen"
	settingsFile = "config.toml"
)

// Setting keys, shared by the settings file, the environment and flags
const (
	KeyProviders = "providers"
	KeyOutput    = "output"
	KeyFormat    = "format"
	KeyJobs      = "jobs"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Settings are the tool defaults applied when a flag is not given
type Settings struct {
	Providers []string `koanf:"providers"`
	Output    string   `koanf:"output"`
	Format    string   `koanf:"format"`
	Jobs      int      `koanf:"jobs"`
}

// Options controls which layers Load reads
type Options struct {
	// File replaces the default settings file. A file named here must exist.
	File string
	// Overrides are values given explicitly on the command line. They win
	// over every other layer.
	Overrides map[string]interface{}
}

// DefaultFile returns the settings file read when Options.File is empty
func DefaultFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appDirName, settingsFile)
}

// Load merges, lowest first: the embedded defaults, the settings file,
// PROMPTGEN_* environment variables and opts.Overrides.
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("settings")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	// 2. Settings file
	path, required := opts.File, true
	if path == "" {
		path, required = DefaultFile(), false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "settings file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment settings")
	}

	// 4. Command line
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to load command line settings")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to decode settings")
	}

	s.normalize()
	logger.Debug().
		Strs("providers", s.Providers).
		Str("output", s.Output).
		Str("format", s.Format).
		Int("jobs", s.Jobs).
		Msg("Settings resolved")

	return &s, nil
}

func (s *Settings) normalize() {
	var providers []string
	for _, p := range s.Providers {
		if p = strings.TrimSpace(p); p != "" {
			providers = append(providers, p)
		}
	}
	s.Providers = providers

	if s.Output == "" {
		s.Output = "."
	}
	if s.Jobs < 1 {
		s.Jobs = 1
	}
}
