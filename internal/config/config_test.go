package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `user_id: player-4
log_level: debug
tick_interval: 500ms
catalog_path: drills.yaml
storage:
  driver: memory
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "player-4", cfg.UserID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 5*time.Second, cfg.SaveTimeout)
	assert.Equal(t, "drills.yaml", cfg.CatalogPath)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "drill.db", cfg.Storage.DSN)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "user_id: from-file\nstorage:\n  driver: memory\n")
	t.Setenv("DRILL_USER_ID", "from-env")
	t.Setenv("DRILL_STORAGE_DRIVER", "postgres")
	t.Setenv("DRILL_STORAGE_DSN", "postgres://localhost/drill")
	t.Setenv("DRILL_TICK_INTERVAL", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.UserID)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/drill", cfg.Storage.DSN)
	assert.Equal(t, 2*time.Second, cfg.TickInterval)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed yaml", body: "storage: [unterminated"},
		{name: "zero tick", body: "tick_interval: 0s"},
		{name: "unknown driver", body: "storage:\n  driver: oracle\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
