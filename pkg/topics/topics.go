// Package topics adds topic pages to a cobra help system. A topic is a
// markdown or text file; "help <topic>" and "help topics" read them from any
// fs.FS, by default the pattern explanations embedded in the binary.
package topics

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed content/*.md
var content embed.FS

// Builtin returns the topics shipped with the binary
func Builtin() fs.FS {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// Topic is one loaded help page
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures a TopicManager
type Options struct {
	// Extensions lists the file extensions read as topics (default .txt and .md)
	Extensions []string

	// Renderer formats topic content (default PlainRenderer)
	Renderer Renderer
}

// TopicManager loads topics from a file system and serves them to cobra
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions map[string]bool
	renderer   Renderer

	fallback func(*cobra.Command, []string)
}

// New creates a TopicManager reading .txt and .md files from fsys
func New(fsys fs.FS) *TopicManager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a TopicManager with custom options
func NewWithOptions(fsys fs.FS, opts Options) *TopicManager {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".md"}
	}

	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: make(map[string]bool, len(exts)),
		renderer:   opts.Renderer,
	}
	for _, ext := range exts {
		tm.extensions[ext] = true
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

// Scan loads every topic file in the file system. Topics are named after
// their file without the extension, regardless of the directory.
func (tm *TopicManager) Scan() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.extensions[path.Ext(p)] {
			return nil
		}

		data, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(data)}
		return nil
	})
}

// GetTopic looks a topic up by name. Flag spellings such as --no-color also
// match a topic named option-no-color.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns the topic names in sorted order
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the rendered content of the named topic
func (tm *TopicManager) Render(name string) (string, error) {
	topic, ok := tm.GetTopic(name)
	if !ok {
		return "", errors.Newf(errors.ErrTopicNotFound, "no help topic named '%s'", name).
			WithDetail("known", tm.ListTopics())
	}
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)), nil
}

// PrintList writes the topic list and a usage hint to w
func (tm *TopicManager) PrintList(w io.Writer, appName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	fmt.Fprintln(w, "Available help topics:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize installs topic help on root with the default options
func Initialize(root *cobra.Command, fsys fs.FS) (*TopicManager, error) {
	return InitializeWithOptions(root, fsys, Options{})
}

// InitializeWithOptions scans fsys and replaces root's help command and help
// func: topics win, anything else falls back to cobra's command help
func InitializeWithOptions(root *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := NewWithOptions(fsys, opts)
	if err := tm.Scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.fallback = root.HelpFunc()

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.AddCommand(tm.helpCommand(root))

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 && tm.printTopic(cmd, args[0]) {
			return
		}
		tm.fallback(cmd, args)
	})

	return tm, nil
}

func (tm *TopicManager) helpCommand(root *cobra.Command) *cobra.Command {
	name := root.Name()
	return &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help shows the usage of any command or the content of a topic.\n\n" +
			"List the topics with:\n  " + name + " help topics",
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return tm.completions(root), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			switch {
			case len(args) == 0:
				tm.fallback(root, args)
			case args[0] == "topics":
				tm.PrintList(cmd.OutOrStdout(), name)
			case tm.printTopic(cmd, args[0]):
			default:
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					target = root
				}
				tm.fallback(target, args)
			}
		},
	}
}

// printTopic writes the rendered topic and reports whether it exists
func (tm *TopicManager) printTopic(cmd *cobra.Command, name string) bool {
	rendered, err := tm.Render(name)
	if err != nil {
		return false
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return true
}

func (tm *TopicManager) completions(root *cobra.Command) []string {
	completions := []string{"topics"}
	for _, c := range root.Commands() {
		if !c.Hidden {
			completions = append(completions, c.Name())
		}
	}
	return append(completions, tm.ListTopics()...)
}
