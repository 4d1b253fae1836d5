package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	if argv == nil {
		argv = []string{}
	}

	var out, errs bytes.Buffer

	code := run(argv, strings.NewReader(stdin), &out, &errs)

	return code, out.String(), errs.String()
}

func TestCommand(t *testing.T) {
	code, out, errs := invoke(t, "", "-c", "(display (+ 1 2))")

	assert.Equal(t, 0, code)
	assert.Equal(t, "3", out)
	assert.Empty(t, errs)
}

func TestCommandError(t *testing.T) {
	code, _, errs := invoke(t, "", "-c", "(car 1)")

	assert.Equal(t, 1, code)
	assert.Contains(t, errs, "error:")
}

func TestExitStatus(t *testing.T) {
	code, _, _ := invoke(t, "", "-c", "(exit 5)")

	assert.Equal(t, 5, code)
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.scm")

	err := os.WriteFile(path, []byte(`(for-each (lambda (a) (display a) (newline)) (cdr (command-line)))`), 0o600)
	require.NoError(t, err)

	code, out, _ := invoke(t, "", path, "one", "two")

	assert.Equal(t, 0, code)
	assert.Equal(t, "one\ntwo\n", out)
}

func TestMissingScript(t *testing.T) {
	code, _, errs := invoke(t, "", filepath.Join(t.TempDir(), "missing.scm"))

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errs)
}

func TestStdin(t *testing.T) {
	code, out, _ := invoke(t, "(define x 20)\n(write (+ x 22))\n")

	assert.Equal(t, 0, code)
	assert.Equal(t, "42", out)
}

func TestPreload(t *testing.T) {
	dir := t.TempDir()

	lib := filepath.Join(dir, "lib.scm")
	require.NoError(t, os.WriteFile(lib, []byte("(define (twice x) (* 2 x))"), 0o600))

	config := filepath.Join(dir, "tern.yaml")
	require.NoError(t, os.WriteFile(config, []byte("preload:\n  - "+lib+"\n"), 0o600))

	code, out, _ := invoke(t, "", "--config="+config, "-c", "(display (twice 21))")

	assert.Equal(t, 0, code)
	assert.Equal(t, "42", out)
}

func TestSuperviseTerminated(t *testing.T) {
	terminated := make(chan struct{})
	release := make(chan struct{})

	defer close(release)

	cleaned := false

	close(terminated)

	code := supervise(terminated, func() int {
		<-release

		return 0
	}, func() {
		cleaned = true
	})

	assert.Equal(t, terminatedStatus, code)
	assert.True(t, cleaned)
}

func TestSuperviseCompletes(t *testing.T) {
	code := supervise(make(chan struct{}), func() int {
		return 7
	}, func() {
		t.Fatal("cleanup called")
	})

	assert.Equal(t, 7, code)
}
