// Package types defines the interfaces shared across promptgen packages.
// Keeping them here lets the loader and the batch writer depend on the
// filesystem abstraction without importing a concrete implementation.
package types
