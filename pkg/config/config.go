package config

import (
	"github.com/arthur-debert/patterns/pkg/tree"
)

// Config is the complete runtime configuration
type Config struct {
	Messages Messages `koanf:"messages"`
	Users    Users    `koanf:"users"`
	Tree     Tree     `koanf:"tree"`
	Encoding Encoding `koanf:"encoding"`
}

// Messages holds the user facing text of the menu
type Messages struct {
	Prompt        string   `koanf:"prompt"`
	InvalidChoice string   `koanf:"invalid_choice"`
	Menu          []string `koanf:"menu"`
	Headers       Headers  `koanf:"headers"`
}

// Headers are the section titles printed before each demonstration
type Headers struct {
	Factory   string `koanf:"factory"`
	Composite string `koanf:"composite"`
	Strategy  string `koanf:"strategy"`
}

// Users lists the roles created by the factory demonstration, in order
type Users struct {
	Roles []string `koanf:"roles"`
}

// Tree holds the composite demonstration's labels and sample tree
type Tree struct {
	DirectoryLabel string    `koanf:"directory_label"`
	FileLabel      string    `koanf:"file_label"`
	Indent         string    `koanf:"indent"`
	Sample         tree.Spec `koanf:"sample"`
}

// Encoding lists the strategy demonstration's inputs, in order
type Encoding struct {
	Samples []Sample `koanf:"samples"`
}

// Sample pairs a strategy with the text it transforms
type Sample struct {
	Strategy string `koanf:"strategy"`
	Text     string `koanf:"text"`
}

// Labels returns the render templates for the composite tree
func (c *Config) Labels() tree.Labels {
	return tree.Labels{
		Directory: c.Tree.DirectoryLabel,
		File:      c.Tree.FileLabel,
		Indent:    c.Tree.Indent,
	}
}

// SampleTree builds the configured sample tree
func (c *Config) SampleTree() (tree.Component, error) {
	return tree.Build(c.Tree.Sample)
}
