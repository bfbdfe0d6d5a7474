package promptgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/promptgen/internal/version"
	"github.com/arthur-debert/promptgen/pkg/config"
	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/filesystem"
	"github.com/arthur-debert/promptgen/pkg/logging"
	"github.com/arthur-debert/promptgen/pkg/providers"
	"github.com/arthur-debert/promptgen/pkg/ui"
	"github.com/arthur-debert/promptgen/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var (
		provider string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:     "preview <config>",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		Example: MsgPreviewExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsFile, _ := cmd.Flags().GetString("settings")
			_, format, _, err := resolveSettings(cmd, settingsFile)
			if err != nil {
				return err
			}

			if err := runPreview(cmd, args[0], provider, raw, format); err != nil {
				return reportError(cmd, format, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", MsgFlagProvider)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	_ = cmd.RegisterFlagCompletionFunc("provider", providerKeysCompletion)

	return cmd
}

func runPreview(cmd *cobra.Command, configPath, provider string, raw bool, format ui.Format) error {
	logger := logging.GetLogger("cmd.preview")

	if provider == "" {
		return errors.Newf(errors.ErrInvalidInput, MsgErrNoProvider, strings.Join(providers.Keys(), ", "))
	}

	d, err := providers.Lookup(provider)
	if err != nil {
		return err
	}

	doc, err := config.Load(filesystem.NewOS(), configPath)
	if err != nil {
		return err
	}

	text, err := d.Render(doc)
	if err != nil {
		return fmt.Errorf(MsgErrPreview, provider, err)
	}

	out := cmd.OutOrStdout()
	if !raw && ui.Resolve(format, out) == ui.FormatTerminal {
		logger.Debug().Str("provider", provider).Msg("Rendering preview as markdown")
		text = ui.NewMarkdownRenderer().Render(text, d.OutputPath(doc))
	}

	_, err = io.WriteString(out, text)
	return err
}

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: MsgProvidersShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsFile, _ := cmd.Flags().GetString("settings")
			_, _, renderer, err := resolveSettings(cmd, settingsFile)
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.ListProviders())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsFile, _ := cmd.Flags().GetString("settings")
			_, _, renderer, err := resolveSettings(cmd, settingsFile)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
