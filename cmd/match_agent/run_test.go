package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-match-agent/internal/config"
)

func TestApplyRunFlags_OverridesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Query = "from-config"
	cfg.TimeoutSeconds = 40

	require.NoError(t, runCmd.Flags().Set("query", "from-flag"))
	require.NoError(t, runCmd.Flags().Set("timeout", "20"))
	defer func() {
		_ = runCmd.Flags().Set("query", "")
		_ = runCmd.Flags().Set("timeout", "0")
	}()

	applyRunFlags(runCmd, cfg)

	assert.Equal(t, "from-flag", cfg.Query)
	assert.Equal(t, 20, cfg.TimeoutSeconds)
	// untouched flags keep config values
	assert.Equal(t, "", cfg.Resume)
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(map[string]string{"status": "ok"}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "ok"}`, string(data))
}

func TestLoadConfig_DefaultsWithoutPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}
