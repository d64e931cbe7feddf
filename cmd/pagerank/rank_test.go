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

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"1.html": `<html><body><a href="2.html">2</a></body></html>`,
		"2.html": `<html><body><a href="1.html">1</a><a href="3.html">3</a></body></html>`,
		"3.html": `<html><body><a href="2.html">2</a></body></html>`,
	}
	for name, contents := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}
	return dir
}

// execute runs the CLI with the estimator environment cleared.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithEnv(t, nil, args...)
}

func executeWithEnv(t *testing.T, vars map[string]string, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"DAMPING", "SAMPLES", "THRESHOLD", "MAX_ITERATIONS", "SEED"} {
		t.Setenv(name, vars[name])
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRankCommand(t *testing.T) {
	out, err := execute(t, "rank", writeCorpus(t), "--samples", "1000", "--seed", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "PageRank Results from Sampling (n = 1000)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  1.html: "))
	assert.True(t, strings.HasPrefix(lines[2], "  2.html: "))
	assert.True(t, strings.HasPrefix(lines[3], "  3.html: "))
	assert.Equal(t, "PageRank Results from Iteration", lines[4])
	assert.Equal(t, "  1.html: 0.2570", lines[5])
	assert.Equal(t, "  2.html: 0.4860", lines[6])
	assert.Equal(t, "  3.html: 0.2570", lines[7])
}

func TestRankCommand_EnvironmentAndFlags(t *testing.T) {
	dir := writeCorpus(t)
	vars := map[string]string{"SAMPLES": "25", "SEED": "3"}

	out, err := executeWithEnv(t, vars, "rank", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PageRank Results from Sampling (n = 25)\n"))

	out, err = executeWithEnv(t, vars, "rank", dir, "--samples", "30")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PageRank Results from Sampling (n = 30)\n"))

	_, err = executeWithEnv(t, map[string]string{"DAMPING": "high"}, "rank", dir)
	assert.Error(t, err)
}

func TestRankCommand_Reproducible(t *testing.T) {
	dir := writeCorpus(t)
	first, err := execute(t, "rank", dir, "--samples", "500", "--seed", "9")
	require.NoError(t, err)
	second, err := execute(t, "rank", dir, "--samples", "500", "--seed", "9")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRankCommand_Reference(t *testing.T) {
	out, err := execute(t, "rank", writeCorpus(t), "-n", "10", "--reference")
	require.NoError(t, err)

	assert.Regexp(t, `PageRank Results from Reference\n  1\.html: 0\.25\d\d\n  2\.html: 0\.48\d\d\n  3\.html: 0\.25\d\d\n$`, out)
}

func TestRankCommand_ConfigFileAndOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "ranks.txt")
	config := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"samples": 20, "seed": 5, "output": "`+output+`"}`), 0644))

	out, err := execute(t, "rank", writeCorpus(t), "--config", config)
	require.NoError(t, err)
	assert.Empty(t, out)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(contents), "PageRank Results from Sampling (n = 20)\n"))
}

func TestRankCommand_Render(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.dot")

	_, err := execute(t, "rank", writeCorpus(t), "-n", "10", "--render", path, "--format", "dot")
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "digraph")
}

func TestRankCommand_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"missing corpus", []string{"rank"}},
		{"too many arguments", []string{"rank", "a", "b"}},
		{"missing directory", []string{"rank", filepath.Join(t.TempDir(), "missing")}},
		{"empty corpus", []string{"rank", t.TempDir()}},
		{"bad damping", []string{"rank", writeCorpus(t), "--damping", "1.5"}},
		{"no samples", []string{"rank", writeCorpus(t), "--samples", "0"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := execute(t, c.args...)
			assert.Error(t, err)
		})
	}
}
