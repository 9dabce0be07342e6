// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpe/copycheck/cmd/copycheck/internal/clierr"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLIContract(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, want := range []string{"check-only", "dry-run", "verbose", "year", "version"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("COPYCHECK_VERSION", "1.2.3")
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "copycheck version 1.2.3\n", out)
}

func TestModesAreMutuallyExclusive(t *testing.T) {
	_, err := execute(t, t.TempDir(), "--check-only", "--dry-run")
	assert.Error(t, err)
}

func TestMissingPath(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
}

func TestCheckOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print(1)\n")
	okContent := "// Copyright 2025-2025 Hewlett Packard Enterprise Development LP\npackage main\n"
	okPath := writeFile(t, dir, "ok.go", okContent)

	out, err := execute(t, dir, "--check-only", "--year", "2025")
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))

	// One flagged file, one finding line, nothing else.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "a.py")

	// Nothing was modified.
	got, readErr := os.ReadFile(filepath.Join(dir, "a.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "print(1)\n", string(got))
	got, readErr = os.ReadFile(okPath)
	require.NoError(t, readErr)
	assert.Equal(t, okContent, string(got))
}

func TestCheckOnlyCleanTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.go",
		"// Copyright 2025-2025 Hewlett Packard Enterprise Development LP\npackage main\n")

	out, err := execute(t, dir, "--check-only", "--year", "2025")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDryRunPrintsEverythingAndTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print(1)\n")
	writeFile(t, dir, "ok.go",
		"// Copyright 2025-2025 Hewlett Packard Enterprise Development LP\npackage main\n")

	out, err := execute(t, dir, "--dry-run", "--year", "2025")
	require.NoError(t, err)

	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "a.py")
	assert.Contains(t, out, "ok.go")
	assert.Contains(t, out, "Summary:")

	got, readErr := os.ReadFile(filepath.Join(dir, "a.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "print(1)\n", string(got))
}

func TestFixIsTheDefaultMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print(1)\n")

	out, err := execute(t, dir, "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary:")

	got, readErr := os.ReadFile(filepath.Join(dir, "a.py"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"# Copyright 2025-2025 Hewlett Packard Enterprise Development LP\nprint(1)\n",
		string(got))
}

func TestConfigExtendsExtensionsAndIgnores(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".copycheck.yml", "extensions:\n  \".fish\": \"#\"\nignore:\n  - \"gen/\"\n")
	writeFile(t, dir, "script.fish", "echo hi\n")
	writeFile(t, dir, "gen/gen.go", "package gen\n")

	_, err := execute(t, dir, "--year", "2025")
	require.NoError(t, err)

	got, readErr := os.ReadFile(filepath.Join(dir, "script.fish"))
	require.NoError(t, readErr)
	assert.Equal(t,
		"# Copyright 2025-2025 Hewlett Packard Enterprise Development LP\necho hi\n",
		string(got))

	got, readErr = os.ReadFile(filepath.Join(dir, "gen", "gen.go"))
	require.NoError(t, readErr)
	assert.Equal(t, "package gen\n", string(got))
}

func TestCopyrightignoreIsRespected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".copyrightignore", "legacy/\n")
	writeFile(t, dir, "legacy/old.py", "pass\n")

	_, err := execute(t, dir, "--check-only", "--year", "2025")
	require.NoError(t, err)
}
