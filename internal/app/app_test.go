package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/report"
)

const fixturesDir = "../../testdata/fixtures"

func copyFixture(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(fixturesDir, name))
	require.NoError(t, err)
	dst := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
	return dst
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestCheckReportsProblems(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "unsorted.tsx")
	copyFixture(t, dir, "sorted.tsx")

	stdout, _, err := execute(t, "--check", "--no-color", dir)
	require.ErrorIs(t, err, ErrProblemsFound)

	assert.Contains(t, stdout, "unsorted.tsx")
	assert.Contains(t, stdout, config.RuleComponentProps)
	assert.Contains(t, stdout, config.RuleJSXProps)
	assert.Contains(t, stdout, config.RuleTypeProperties)
	assert.Contains(t, stdout, "3 problems (3 fixable with --write)")
}

func TestCheckPassesOnSortedFile(t *testing.T) {
	dir := t.TempDir()
	file := copyFixture(t, dir, "sorted.tsx")

	stdout, _, err := execute(t, "--check", file)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestWriteFixesFiles(t *testing.T) {
	dir := t.TempDir()
	file := copyFixture(t, dir, "unsorted.tsx")

	_, _, err := execute(t, "--write", "--check", "--workers", "2", dir)
	require.NoError(t, err)

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(fixturesDir, "sorted.tsx"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	_, _, err = execute(t, "--check", dir)
	assert.NoError(t, err)
}

func TestDryRunDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	file := copyFixture(t, dir, "unsorted.tsx")
	before, err := os.ReadFile(file)
	require.NoError(t, err)

	_, _, err = execute(t, dir)
	require.NoError(t, err)

	after, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestJSONFormat(t *testing.T) {
	dir := t.TempDir()
	file := copyFixture(t, dir, "unsorted.tsx")

	stdout, _, err := execute(t, "--format", "json", file)
	require.NoError(t, err)

	var out report.Output
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, 3, out.Fixable)
	require.Len(t, out.Files, 1)
}

func TestMsgpackFormat(t *testing.T) {
	dir := t.TempDir()
	file := copyFixture(t, dir, "unsorted.tsx")

	stdout, _, err := execute(t, "--format", "msgpack", file)
	require.NoError(t, err)

	out, err := report.ReadMsgpack(bytes.NewReader([]byte(stdout)))
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := copyFixture(t, dir, "unsorted.tsx")

	cfgPath := filepath.Join(dir, "prop-ordering.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`rules:
  sort-jsx-props:
    enabled: false
  sort-type-properties:
    enabled: false
`), 0o644))

	stdout, _, err := execute(t, "--check", "--no-color", "--config", cfgPath, file)
	require.ErrorIs(t, err, ErrProblemsFound)
	assert.Contains(t, stdout, "1 problem (1 fixable with --write)")
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "unsorted.tsx")

	cfgPath := filepath.Join(dir, "prop-ordering.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`[rules.sort-jsx-props]
callbackPrefixes = ["on"]
callbackPatterns = ["^on"]
`), 0o644))

	_, _, err := execute(t, "--config", cfgPath, dir)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "sorted.tsx")
	_, _, err := execute(t, "--format", "xml", dir)
	assert.Error(t, err)
}

func TestBadExtension(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(file, []byte("# notes"), 0o644))

	_, _, err := execute(t, file)
	assert.Error(t, err)
}

func TestRequiresPath(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestVerboseSummary(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "unsorted.tsx")
	copyFixture(t, dir, "sorted.tsx")

	_, stderr, err := execute(t, "--verbose", "--no-color", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Total files:    2")
	assert.Contains(t, stderr, "Would sort:     1")
}
