package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testCLI runs MainWithInput against a todo file in a temp directory.
type testCLI struct {
	t    *testing.T
	Dir  string
	File string
	Env  map[string]string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	dir := t.TempDir()
	return &testCLI{
		t:    t,
		Dir:  dir,
		File: filepath.Join(dir, "todos.json"),
		Env:  map[string]string{},
	}
}

// Run executes the CLI and returns stdout, stderr and the exit code.
func (c *testCLI) Run(args ...string) (string, string, int) {
	var out, errOut bytes.Buffer
	full := append([]string{"--file", c.File}, args...)
	code := MainWithInput(nil, full, &out, &errOut, c.Env)
	return out.String(), errOut.String(), code
}

// MustRun fails the test on a non-zero exit and returns trimmed stdout.
func (c *testCLI) MustRun(args ...string) string {
	c.t.Helper()
	stdout, stderr, code := c.Run(args...)
	if code != 0 {
		c.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}
	return strings.TrimSpace(stdout)
}

// ReadFile returns the todo file contents, or "" if it does not exist.
func (c *testCLI) ReadFile() string {
	c.t.Helper()
	b, err := os.ReadFile(c.File)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		c.t.Fatalf("read %s: %v", c.File, err)
	}
	return string(b)
}
