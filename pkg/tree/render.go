package tree

import (
	stderrors "errors"
	"fmt"
	"strings"
)

var errStop = stderrors.New("stop walk")

// Labels are the line templates used when rendering. Each template takes the
// component name as its only %s verb; Indent is added once per depth level.
type Labels struct {
	Directory string
	File      string
	Indent    string
}

// DefaultLabels returns the Ukrainian labels of the original demo
func DefaultLabels() Labels {
	return Labels{
		Directory: "Папка: %s",
		File:      "Файл: %s",
		Indent:    "  ",
	}
}

// NeutralLabels returns language neutral node/leaf labels
func NeutralLabels() Labels {
	return Labels{
		Directory: "Node: %s",
		File:      "Leaf: %s",
		Indent:    "  ",
	}
}

// Line renders the single line for c at the given indent
func (l Labels) Line(c Component, indent string) string {
	template := l.File
	if c.Kind() == KindDirectory {
		template = l.Directory
	}
	return indent + fmt.Sprintf(template, c.Name())
}

// Render returns one line per component in pre-order. Children are indented
// one Indent unit deeper than their parent and appear in insertion order.
func Render(c Component, labels Labels, indent string) []string {
	var lines []string
	_ = Walk(c, func(node Component, depth int) error {
		lines = append(lines, labels.Line(node, indent+strings.Repeat(labels.Indent, depth)))
		return nil
	})
	return lines
}

// Lines renders c with the default labels and no leading indent
func Lines(c Component) []string {
	return Render(c, DefaultLabels(), "")
}

// Walk visits c and its descendants in pre-order, passing each component's
// depth (the root is at 0). A non-nil error from fn stops the walk.
func Walk(c Component, fn func(c Component, depth int) error) error {
	err := walk(c, 0, fn)
	if stderrors.Is(err, errStop) {
		return nil
	}
	return err
}

func walk(c Component, depth int, fn func(Component, int) error) error {
	if err := fn(c, depth); err != nil {
		return err
	}
	for _, child := range c.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of components in the tree rooted at c
func Count(c Component) int {
	n := 0
	_ = Walk(c, func(Component, int) error {
		n++
		return nil
	})
	return n
}

// Depth returns the depth of the deepest component; a lone leaf has depth 0
func Depth(c Component) int {
	deepest := 0
	_ = Walk(c, func(_ Component, depth int) error {
		if depth > deepest {
			deepest = depth
		}
		return nil
	})
	return deepest
}
