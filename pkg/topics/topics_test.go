package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"factory.md":          {Data: []byte("# Factory\n")},
		"nested/strategy.md":  {Data: []byte("# Strategy\n")},
		"option-no-color.txt": {Data: []byte("disables colors\n")},
		"notes.json":          {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"factory", "option-no-color", "strategy"}, tm.ListTopics())

	topic, ok := tm.GetTopic("strategy")
	require.True(t, ok)
	assert.Equal(t, "nested/strategy.md", topic.FilePath)
	assert.Equal(t, "# Strategy\n", topic.Content)
}

func TestScanCustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".txt"}})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"option-no-color"}, tm.ListTopics())
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--no-color", "-no-color", "no-color", "option-no-color"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-no-color", topic.Name)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestRenderUnknownTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	_, err := tm.Render("missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTopicNotFound))
	assert.Equal(t, tm.ListTopics(), errors.GetErrorDetails(err)["known"])
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return format + ":" + strings.ToUpper(content)
}

func TestRenderUsesRenderer(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, tm.Scan())

	out, err := tm.Render("factory")
	require.NoError(t, err)
	assert.Equal(t, ".md:# FACTORY\n", out)
}

func TestGlamourRendererPassesThroughText(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func TestBuiltinTopics(t *testing.T) {
	tm := New(Builtin())
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"composite", "factory", "registry", "strategy"}, tm.ListTopics())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "app", Short: "test app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestInitializeHelpTopic(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	assert.Equal(t, "# Factory\n", execute(t, root, "help", "factory"))
}

func TestInitializeHelpTopicsList(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := execute(t, root, "help", "topics")
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "  factory\n")
	assert.Contains(t, out, "'app help <topic>'")
}

func TestInitializeFallsBackToCommandHelp(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	out := execute(t, root, "help", "sub")
	assert.Contains(t, out, "a subcommand")
}

func TestInitializeEmpty(t *testing.T) {
	root := newRoot()
	_, err := Initialize(root, fstest.MapFS{})
	require.NoError(t, err)

	assert.Equal(t, "No help topics available.\n", execute(t, root, "help", "topics"))
}
