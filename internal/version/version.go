package version

// Build information, overridden at release time with
// -ldflags "-X github.com/arthur-debert/promptgen/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the one-line version banner
func String() string {
	return "promptgen version " + Version + " (commit " + Commit + ", built " + Date + ")"
}
