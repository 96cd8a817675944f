// Package tree implements the composite: files are leaves, directories hold
// an ordered list of children, and both render through the same traversal.
// Trees are built bottom-up and are read-only once rendering starts.
package tree

import (
	"github.com/arthur-debert/patterns/pkg/errors"
)

// Kind tags a component as a leaf or a container
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// Component is a node of the tree
type Component interface {
	Name() string
	Kind() Kind
	Children() []Component
}

// File is a leaf
type File struct {
	name string
}

// NewFile creates a leaf called name
func NewFile(name string) File {
	return File{name: name}
}

func (f File) Name() string          { return f.name }
func (f File) Kind() Kind            { return KindFile }
func (f File) Children() []Component { return nil }

// Directory is a named container whose children keep insertion order
type Directory struct {
	name     string
	children []Component
	attached bool
}

// NewDirectory creates a directory holding children in the given order.
// Children go through the same checks as Add; it panics if one is rejected.
func NewDirectory(name string, children ...Component) *Directory {
	d := &Directory{name: name}
	if err := d.Add(children...); err != nil {
		panic(err)
	}
	return d
}

func (d *Directory) Name() string { return d.name }
func (d *Directory) Kind() Kind   { return KindDirectory }

// Children returns a copy of the child list
func (d *Directory) Children() []Component {
	out := make([]Component, len(d.children))
	copy(out, d.children)
	return out
}

// Add appends children at the end. A directory has at most one parent, so
// nil children, directories already placed elsewhere and anything that
// contains d are rejected. Nothing is added unless every child passes.
func (d *Directory) Add(children ...Component) error {
	seen := make(map[*Directory]bool)
	for _, child := range children {
		if child == nil {
			return errors.Newf(errors.ErrTreeInvalid, "cannot add nil child to %q", d.name)
		}
		dir, ok := child.(*Directory)
		if !ok {
			continue
		}
		if dir == nil {
			return errors.Newf(errors.ErrTreeInvalid, "cannot add nil directory to %q", d.name)
		}
		if dir.attached || seen[dir] {
			return errors.Newf(errors.ErrTreeInvalid, "directory %q already has a parent", dir.name)
		}
		if contains(dir, d) {
			return errors.Newf(errors.ErrTreeInvalid, "adding %q to %q would create a cycle", dir.name, d.name)
		}
		seen[dir] = true
	}
	for dir := range seen {
		dir.attached = true
	}
	d.children = append(d.children, children...)
	return nil
}

func contains(root Component, target *Directory) bool {
	found := false
	_ = Walk(root, func(c Component, _ int) error {
		if dir, ok := c.(*Directory); ok && dir == target {
			found = true
			return errStop
		}
		return nil
	})
	return found
}
