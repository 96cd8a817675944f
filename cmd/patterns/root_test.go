package patterns

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/patterns/pkg/config"
	"github.com/arthur-debert/patterns/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with stdin and args, returning stdout and
// stderr separately
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeEnv(t, nil, stdin, args...)
}

// executeEnv is execute with a clean environment: XDG homes point at temp
// dirs, inherited PATTERNS_* variables are removed and env is applied on top
func executeEnv(t *testing.T, env map[string]string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	for name, value := range env {
		t.Setenv(name, value)
	}

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootMenuSelections(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{
			name:  "users",
			stdin: "1\n",
			want:  "Я Адміністратор.\nЯ Менеджер.\nЯ Працівник.\n",
		},
		{
			name:  "tree",
			stdin: "2\n",
			want:  "Папка: Root\n  Файл: readme.txt\n  Папка: Docs\n    Файл: doc1.pdf\n    Файл: doc2.pdf\n",
		},
		{
			name:  "encoding",
			stdin: " 3 \n",
			want: "[AES] 0KHQtdC60YDQtdGC0L3RliDQtNCw0L3Rlg==\n" +
				"[RSA] 0JrQvtC90YTRltC00LXQvdGG0ZbQudC90LAg0ZbQvdGE0L7RgNC80LDRhtGW0Y8=\n" +
				"0J/RgNC+0YHRgtC40Lkg0YLQtdC60YHRgg==\n",
		},
		{
			name:  "invalid",
			stdin: "7\n",
			want:  "Невірний вибір.\n",
		},
		{
			name:  "empty input",
			stdin: "",
			want:  "Невірний вибір.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			// stdin is not a terminal, so no prompt is shown
			assert.Empty(t, errOut)
		})
	}
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "", "bogus")
	assert.Error(t, err)
}

func TestRootConfigFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[messages]\ninvalid_choice = \"Invalid choice.\"\n")

	out, _, err := execute(t, "9\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Invalid choice.\n", out)
}

func TestRootMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "1\n", "--config", filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.True(t, errors.IsConfigurationError(err))
}

func TestRootInvalidConfig(t *testing.T) {
	path := writeFile(t, "config.toml", "[users]\nroles = [\"admin\", \"guest\"]\n")

	_, _, err := execute(t, "1\n", "--config", path)

	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestRootEnvOverride(t *testing.T) {
	out, _, err := executeEnv(t, map[string]string{"PATTERNS_MESSAGES__INVALID_CHOICE": "nope"}, "x\n")
	require.NoError(t, err)
	assert.Equal(t, "nope\n", out)
}

func TestRootIgnoresInheritedEnv(t *testing.T) {
	t.Setenv("PATTERNS_MESSAGES__INVALID_CHOICE", "inherited")

	out, _, err := execute(t, "x\n")
	require.NoError(t, err)
	assert.Equal(t, "Невірний вибір.\n", out)
}

func TestRootReadsUserConfigFromXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "patterns")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[messages]\ninvalid_choice = \"from xdg\"\n"), 0644))

	out, _, err := executeEnv(t, map[string]string{"XDG_CONFIG_HOME": home}, "x\n")
	require.NoError(t, err)
	assert.Equal(t, "from xdg\n", out)

	out, _, err = execute(t, "x\n")
	require.NoError(t, err)
	assert.Equal(t, "Невірний вибір.\n", out)
}

func TestRootRejectsMultilineInvalidChoice(t *testing.T) {
	_, _, err := executeEnv(t, map[string]string{"PATTERNS_MESSAGES__INVALID_CHOICE": "one\ntwo"}, "x\n")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCmd()

	groups := map[string]string{}
	for _, c := range cmd.Commands() {
		groups[c.Name()] = c.GroupID
	}

	for name, group := range map[string]string{
		"users":      "demo",
		"tree":       "demo",
		"encode":     "demo",
		"all":        "demo",
		"roles":      "registry",
		"strategies": "registry",
		"formats":    "registry",
		"genconfig":  "misc",
		"version":    "misc",
		"topics":     "misc",
		"completion": "misc",
	} {
		got, ok := groups[name]
		require.True(t, ok, "missing command %s", name)
		assert.Equal(t, group, got, name)
	}

	assert.Contains(t, groups, "help")
}

func TestHelpTopic(t *testing.T) {
	out, _, err := execute(t, "", "help", "composite")
	require.NoError(t, err)
	assert.Contains(t, out, "Composite")
}

func TestTopicsCommand(t *testing.T) {
	out, _, err := execute(t, "", "topics")
	require.NoError(t, err)
	for _, name := range []string{"composite", "factory", "registry", "strategy"} {
		assert.Contains(t, out, "  "+name+"\n")
	}
}

func TestHelpFallsBackToCommand(t *testing.T) {
	out, _, err := execute(t, "", "help", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "--format")
}

func TestUsageTemplateFuncs(t *testing.T) {
	initTemplateFormatting()

	assert.Equal(t, "USAGE:", formatUpper("Usage:"))
	// tests never run on a terminal
	assert.Equal(t, "USAGE:", formatBoldUpper("Usage:"))
	assert.Equal(t, "x", formatBold("x"))
}
