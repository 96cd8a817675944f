// Package registry provides a generic, type-safe registry keyed by name and,
// on top of it, Variants: a mapping from a discriminant to the constructor of
// one concrete variant of a behavior family. Families register their
// variants from init() functions and callers create instances by name.
package registry
