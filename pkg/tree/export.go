package tree

import (
	"fmt"
	"io"

	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/arthur-debert/patterns/pkg/registry"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Exporter writes a whole tree in one output format
type Exporter interface {
	Format() string
	Export(w io.Writer, root Component, labels Labels) error
}

// Output format names
const (
	FormatText = "text"
	FormatXML  = "xml"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var exporters = registry.NewVariants[Exporter]("tree format")

func init() {
	exporters.MustRegister(FormatText, func() Exporter { return textExporter{} })
	exporters.MustRegister(FormatXML, func() Exporter { return xmlExporter{} })
	exporters.MustRegister(FormatYAML, func() Exporter { return yamlExporter{} })
	exporters.MustRegister(FormatTOML, func() Exporter { return tomlExporter{} })
	if err := exporters.Alias("yml", FormatYAML); err != nil {
		panic(err)
	}
}

// Formats lists the supported export formats
func Formats() []string {
	return exporters.Names()
}

// Variants exposes the exporter registry for listing and completion
func Variants() *registry.Variants[Exporter] {
	return exporters
}

// Export writes root to w in the named format. Labels only affect text.
func Export(w io.Writer, root Component, format string, labels Labels) error {
	exp, err := exporters.Create(format)
	if err != nil {
		return errors.Wrapf(err, errors.ErrExportFormat, "cannot export tree as '%s'", format).
			WithDetail("known", Formats())
	}
	return exp.Export(w, root, labels)
}

type textExporter struct{}

func (textExporter) Format() string { return FormatText }

func (textExporter) Export(w io.Writer, root Component, labels Labels) error {
	for _, line := range Render(root, labels, "") {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type xmlExporter struct{}

func (xmlExporter) Format() string { return FormatXML }

func (xmlExporter) Export(w io.Writer, root Component, _ Labels) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	appendElement(&doc.Element, root)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func appendElement(parent *etree.Element, c Component) {
	el := parent.CreateElement(string(c.Kind()))
	el.CreateAttr("name", c.Name())
	for _, child := range c.Children() {
		appendElement(el, child)
	}
}

type yamlExporter struct{}

func (yamlExporter) Format() string { return FormatYAML }

func (yamlExporter) Export(w io.Writer, root Component, _ Labels) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SpecOf(root)); err != nil {
		return err
	}
	return enc.Close()
}

type tomlExporter struct{}

func (tomlExporter) Format() string { return FormatTOML }

func (tomlExporter) Export(w io.Writer, root Component, _ Labels) error {
	return toml.NewEncoder(w).Encode(SpecOf(root))
}
