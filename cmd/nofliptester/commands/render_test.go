package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInstanceWritesDOT(t *testing.T) {
	t.Parallel()

	cfgPath := writeTestConfig(t, `graph:
  vertex_count: 10
  alpha: 1
sequence:
  length: 40
`)

	outPath := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, renderInstance(cfgPath, outPath, false))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "graph {")
}

func TestRenderInstanceRejectsMissingOutput(t *testing.T) {
	t.Parallel()

	cmd := NewRenderCommand()
	require.NoError(t, cmd.Flags().Set("config", ""))
	err := cmd.RunE(cmd, nil)
	require.ErrorIs(t, err, ErrNoOutputPath)
}
