package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Parse([]string{"-t", "script.scm", "a", "-b"}, "test"))

	assert.Equal(t, "script.scm", Script())
	assert.Equal(t, []string{"script.scm", "a", "-b"}, Args())
	assert.Equal(t, "", Command())
	assert.False(t, Interactive())
	assert.True(t, Trace())
	assert.Equal(t, "> ", Prompt())
}

func TestParseCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Parse([]string{"-c", "(display 1)"}, "test"))

	assert.Equal(t, "(display 1)", Command())
	assert.Equal(t, "", Script())
	assert.False(t, Interactive())
	assert.False(t, Trace())
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	path := filepath.Join(dir, "tern.yaml")
	err := os.WriteFile(path, []byte(`
prompt: "tern> "
history: ~/hist
trace: true
preload:
  - ~/lib.scm
  - /tmp/other.scm
`), 0o600)
	require.NoError(t, err)

	require.NoError(t, Parse([]string{"--config=" + path, "-c", "1"}, "test"))

	assert.Equal(t, "tern> ", Prompt())
	assert.Equal(t, filepath.Join(dir, "hist"), History())
	assert.True(t, Trace())
	assert.Equal(t, []string{filepath.Join(dir, "lib.scm"), "/tmp/other.scm"}, Preload())
}

func TestDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	require.NoError(t, Parse([]string{"-c", "1"}, "test"))
	assert.Equal(t, filepath.Join(dir, ".tern_history"), History())

	err := os.WriteFile(filepath.Join(dir, ".ternrc.yaml"), []byte("prompt: \"$ \"\n"), 0o600)
	require.NoError(t, err)

	require.NoError(t, Parse([]string{"-c", "1"}, "test"))
	assert.Equal(t, "$ ", Prompt())
}

func TestMissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Parse([]string{"--config=/no/such/file.yaml", "-c", "1"}, "test")
	assert.Error(t, err)
}

func TestMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preload: [unterminated"), 0o600))

	_, err := Load(path, true)
	assert.Error(t, err)
}
