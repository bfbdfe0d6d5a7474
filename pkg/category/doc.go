// Package category defines the closed set of rule categories a
// configuration document may carry.
//
// Categories are a tagged enumeration rather than free strings so that a
// provider's section plan can only reference names that exist. Documents may
// still contain keys outside this set; the loader keeps them aside and no
// renderer ever reads them.
package category
