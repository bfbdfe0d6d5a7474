// Package generate writes provider documents for a loaded configuration.
//
// Generate is the batch orchestrator. For every requested provider key it
// resolves the provider, renders the document in memory and writes it
// below the output root. Each provider ends up as one Result in the
// returned Report: unknown keys, render failures and write failures are
// recorded there and never stop the remaining providers.
//
// Files are written to a temporary sibling first and renamed into place,
// so a target path holds either the previous file or the complete new one.
package generate
