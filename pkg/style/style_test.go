package style

import (
	"bytes"
	stderrors "errors"
	"os"
	"testing"

	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal("not a file"))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer f.Close()
		assert.False(t, IsTerminal(f))
	}
}

func TestConfigurePlainOutput(t *testing.T) {
	assert.False(t, Configure(&bytes.Buffer{}, false))
	assert.False(t, Configure(&bytes.Buffer{}, true))

	assert.Equal(t, "=== Header ===", RenderHeader("=== Header ==="))
	assert.Equal(t, "bold", Bold("bold"))
}

func TestConfigureFollowsGivenWriter(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	assert.False(t, Configure(f, false))
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "Choose: ", RenderPrompt("Choose: "))
}

func TestRenderError(t *testing.T) {
	Configure(&bytes.Buffer{}, true)

	assert.Equal(t, "Error: boom", RenderError(stderrors.New("boom")))

	err := errors.New(errors.ErrUnknownVariant, "unknown user variant 'root'")
	assert.Equal(t, "Error: [UNKNOWN_VARIANT] unknown user variant 'root'", RenderError(err))
}

func TestRenderMenu(t *testing.T) {
	Configure(&bytes.Buffer{}, true)

	out := RenderMenu([]string{"1 - users", "2 - tree"})

	assert.Contains(t, out, "1 - users")
	assert.Contains(t, out, "2 - tree")
	assert.Less(t, bytes.Index([]byte(out), []byte("1 - users")), bytes.Index([]byte(out), []byte("2 - tree")))
}

func TestRenderNames(t *testing.T) {
	Configure(&bytes.Buffer{}, true)

	out := RenderNames([]string{"admin", "manager"}, map[string][]string{"manager": {"supervisor"}})

	assert.Equal(t, "  admin\n  manager (supervisor)\n", out)
}
