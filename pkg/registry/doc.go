// Package registry provides a generic, type-safe registry that remembers
// registration order. Provider descriptors are registered from init() and
// listed back in the order they were declared.
package registry
