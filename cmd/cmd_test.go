package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/utilityprog/internal/store"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "utilityprog version "+version+"\n", out)
}

func TestNumberAtLocalOptimum(t *testing.T) {
	out := execute(t, "number", "--start", "fixed", "--fixed", "41", "--tries", "0", "--seed", "1", "--stats")

	assert.Contains(t, out, "Starting at: 41\n")
	assert.Contains(t, out, "41, utility 4\n")
	assert.Contains(t, out, "Stopped after 1 round(s): fixed-point (utility 4 -> 4)")
	assert.Contains(t, out, "Calls: 1, attempts: 0, improvements: 0, edits replayed: 0")
}

func TestNumberWritesTrace(t *testing.T) {
	dir := t.TempDir()
	execute(t, "number", "--start", "fixed", "--fixed", "43", "--tries", "0", "--seed", "1", "--trace-dir", dir)
	t.Cleanup(func() { traceDir = "" })

	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	runID := filepath.Base(files[0])
	runID = runID[:len(runID)-len(".jsonl")]
	r, err := store.NewTraceReader(dir, runID)
	require.NoError(t, err)
	defer r.Close()

	entries, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "43", entries[0].Object)
	assert.Equal(t, 4.0, entries[0].Utility)
	assert.Equal(t, runID, entries[0].RunID)
}

func TestUnknownConfigFileIsIgnored(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := os.Stat(missing)
	require.True(t, os.IsNotExist(err))

	out := execute(t, "--config", missing, "version")
	assert.Contains(t, out, "utilityprog version")
	configPath = ""
}
