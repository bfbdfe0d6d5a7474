package promptgen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate AI assistant instruction files from one rule document"
	MsgPreviewShort    = "Print one provider document without writing it"
	MsgProvidersShort  = "List the available providers and their output paths"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput    = "Output directory (default: current directory)"
	MsgFlagProviders = "Providers to generate, comma separated or repeated (default: all)"
	MsgFlagFormat    = "Report format: auto, term, text or json"
	MsgFlagJobs      = "Number of providers generated at the same time"
	MsgFlagSettings  = "Settings file (default: $XDG_CONFIG_HOME/promptgen/config.toml)"
	MsgFlagProvider  = "Provider to preview"
	MsgFlagRaw       = "Print the document exactly as it would be written"

	// Error messages
	MsgErrNoProvider = "--provider is required (one of: %s)"
	MsgErrPreview    = "failed to render %s: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/preview-example.txt
	msgPreviewExampleRaw string
	MsgPreviewExample    = strings.TrimRight(msgPreviewExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
