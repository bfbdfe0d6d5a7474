// Package providers projects a configuration document into the file each
// AI coding assistant expects.
//
// There are five providers, a closed set modelled by Kind. Each has a
// Descriptor carrying its key, its output path template and its layout.
// A layout is data: an optional front-matter block, a title, a list of
// Sections (title, source categories, formatting Mode, item Limit) and an
// optional footer. One shared builder walks any layout, so adding a
// section to a provider never means writing another loop.
//
// Rendering is pure: the same document always produces the same bytes,
// and renderers never touch the filesystem.
package providers
