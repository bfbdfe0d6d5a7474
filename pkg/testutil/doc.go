// Package testutil provides utilities for testing promptgen components.
//
// Key components:
//   - TestEnvironment: isolated output root, XDG directories and filesystem
//   - RuleDoc: declarative builder for rule documents
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when a command touches the real filesystem
//   - Define test documents inline with RuleDoc rather than in external files
package testutil
