package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "./folhatarefa", cfg.OutputDir)
	assert.Equal(t, "Folhas-Tarefa", cfg.FolderPrefix)
	assert.Equal(t, "Folha_Tarefa", cfg.ArtifactPrefix)
	assert.Equal(t, "saida_tratada.xlsx", cfg.NormalizedPath)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.SkipOptimize)
	assert.False(t, cfg.SkipSummary)
	assert.Equal(t, "5900.0126135.23.3", cfg.Contract)
	assert.Equal(t, "REVAMP DA U-272D", cfg.Venture)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	body := []byte(`env: local
output_dir: /tmp/out
folder_prefix: ""
workers: 0
skip_summary: true
header:
  contract: "123"
  venture: "U-100"
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "123", cfg.Contract)
	assert.Equal(t, "U-100", cfg.Venture)
	assert.True(t, cfg.SkipSummary)
	// workers below one are clamped
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ARTIFACT_PREFIX", "Sheet")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Sheet", cfg.ArtifactPrefix)
}
