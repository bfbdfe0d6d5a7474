package promptgen

import (
	stderrors "errors"

	"github.com/arthur-debert/promptgen/internal/version"
	"github.com/arthur-debert/promptgen/pkg/config"
	"github.com/arthur-debert/promptgen/pkg/filesystem"
	"github.com/arthur-debert/promptgen/pkg/generate"
	"github.com/arthur-debert/promptgen/pkg/logging"
	"github.com/arthur-debert/promptgen/pkg/providers"
	"github.com/arthur-debert/promptgen/pkg/settings"
	"github.com/arthur-debert/promptgen/pkg/ui"
	"github.com/arthur-debert/promptgen/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity    int
		settingsFile string
		output       string
		providerKeys []string
		format       string
		jobs         int
	)

	rootCmd := &cobra.Command{
		Use:     "promptgen <config>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], settingsFile)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"toml", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", MsgFlagSettings)

	// Generation flags
	rootCmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().StringSliceVarP(&providerKeys, "providers", "p", nil, MsgFlagProviders)
	rootCmd.Flags().IntVar(&jobs, "jobs", 0, MsgFlagJobs)

	_ = rootCmd.RegisterFlagCompletionFunc("providers", providerKeysCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("format", formatCompletion)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newProvidersCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func providerKeysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return providers.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
}

// flagOverrides returns the settings given explicitly on the command line.
// Flags left at their zero value do not shadow the settings file or the
// environment.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()

	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		overrides[settings.KeyOutput] = v
	}
	if flags.Changed("providers") {
		v, _ := flags.GetStringSlice("providers")
		overrides[settings.KeyProviders] = v
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		overrides[settings.KeyFormat] = v
	}
	if flags.Changed("jobs") {
		v, _ := flags.GetInt("jobs")
		overrides[settings.KeyJobs] = v
	}

	return overrides
}

// resolveSettings loads the layered settings and the renderer they select
func resolveSettings(cmd *cobra.Command, settingsFile string) (*settings.Settings, ui.Format, ui.Renderer, error) {
	s, err := settings.Load(settings.Options{
		File:      settingsFile,
		Overrides: flagOverrides(cmd),
	})
	if err != nil {
		return nil, ui.FormatAuto, nil, err
	}

	format, err := ui.ParseFormat(s.Format)
	if err != nil {
		return nil, ui.FormatAuto, nil, err
	}

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, ui.FormatAuto, nil, err
	}

	return s, format, renderer, nil
}

func runGenerate(cmd *cobra.Command, configPath, settingsFile string) error {
	logger := logging.GetLogger("cmd.generate")

	s, format, renderer, err := resolveSettings(cmd, settingsFile)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	doc, err := config.Load(fsys, configPath)
	if err != nil {
		return reportError(cmd, format, err)
	}

	logger.Info().
		Str("config", configPath).
		Str("language", doc.Language()).
		Strs("providers", s.Providers).
		Str("output", s.Output).
		Int("jobs", s.Jobs).
		Msg("Generating provider files")

	report, err := generate.Generate(cmd.Context(), generate.Options{
		Doc:       doc,
		OutputDir: s.Output,
		Providers: s.Providers,
		FS:        fsys,
		Jobs:      s.Jobs,
	})
	if err != nil {
		return reportError(cmd, format, err)
	}

	return renderer.RenderResult(display.FromReport(report))
}

// renderedError is an error the command already showed to the user
type renderedError struct {
	err error
}

func (e *renderedError) Error() string { return e.err.Error() }
func (e *renderedError) Unwrap() error { return e.err }

// IsRendered reports whether err was already rendered by the command that
// returned it
func IsRendered(err error) bool {
	var r *renderedError
	return stderrors.As(err, &r)
}

// reportError renders err in the selected format. JSON errors go to stdout
// next to where the report would have been; the other formats use stderr.
// The error is returned marked as rendered, or unchanged when it could not
// be rendered.
func reportError(cmd *cobra.Command, format ui.Format, err error) error {
	out := cmd.ErrOrStderr()
	if ui.Resolve(format, cmd.OutOrStdout()) == ui.FormatJSON {
		out = cmd.OutOrStdout()
	}

	renderer, rerr := ui.NewRenderer(format, out)
	if rerr != nil {
		return err
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		return err
	}
	return &renderedError{err: err}
}
