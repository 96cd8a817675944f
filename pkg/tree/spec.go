package tree

import (
	"io"
	"strings"

	"github.com/arthur-debert/patterns/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Spec is the declarative form of a tree as found in config and YAML files.
// A spec with children is a directory; an empty directory needs an explicit
// kind.
type Spec struct {
	Name     string `koanf:"name" yaml:"name" toml:"name"`
	Kind     Kind   `koanf:"kind" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Children []Spec `koanf:"children" yaml:"children,omitempty" toml:"children,omitempty"`
}

// SampleSpec is the demo tree: Root holding readme.txt and Docs, which holds
// doc1.pdf and doc2.pdf
func SampleSpec() Spec {
	return Spec{
		Name: "Root",
		Kind: KindDirectory,
		Children: []Spec{
			{Name: "readme.txt"},
			{Name: "Docs", Children: []Spec{
				{Name: "doc1.pdf"},
				{Name: "doc2.pdf"},
			}},
		},
	}
}

// Sample builds the demo tree bottom-up
func Sample() Component {
	docs := NewDirectory("Docs", NewFile("doc1.pdf"), NewFile("doc2.pdf"))
	return NewDirectory("Root", NewFile("readme.txt"), docs)
}

// Build turns a spec into a component tree
func Build(spec Spec) (Component, error) {
	return build(spec, spec.Name)
}

func build(spec Spec, path string) (Component, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, errors.New(errors.ErrTreeInvalid, "component name cannot be empty").
			WithDetail("path", path)
	}

	kind := spec.Kind
	if kind == "" {
		kind = KindFile
		if len(spec.Children) > 0 {
			kind = KindDirectory
		}
	}

	switch kind {
	case KindFile:
		if len(spec.Children) > 0 {
			return nil, errors.Newf(errors.ErrTreeInvalid, "file %q cannot have children", spec.Name).
				WithDetail("path", path)
		}
		return NewFile(spec.Name), nil
	case KindDirectory:
		dir := NewDirectory(spec.Name)
		for _, childSpec := range spec.Children {
			child, err := build(childSpec, path+"/"+childSpec.Name)
			if err != nil {
				return nil, err
			}
			if err := dir.Add(child); err != nil {
				return nil, err
			}
		}
		return dir, nil
	default:
		return nil, errors.Newf(errors.ErrTreeInvalid, "unknown kind %q for %q", spec.Kind, spec.Name).
			WithDetail("path", path)
	}
}

// SpecOf describes an existing tree; every component gets an explicit kind
func SpecOf(c Component) Spec {
	spec := Spec{Name: c.Name(), Kind: c.Kind()}
	for _, child := range c.Children() {
		spec.Children = append(spec.Children, SpecOf(child))
	}
	return spec
}

// LoadSpec reads a YAML tree definition
func LoadSpec(r io.Reader) (Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if err == io.EOF {
			return Spec{}, errors.New(errors.ErrTreeInvalid, "tree definition is empty")
		}
		return Spec{}, errors.Wrap(err, errors.ErrTreeInvalid, "failed to parse tree definition")
	}
	return spec, nil
}
