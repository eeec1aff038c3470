package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/zork-content/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
content:
  items_path: /data/items
  monsters_path: /data/monsters
  scenes_path: /data/scenes
logging:
  level: debug
  format: console
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/items", cfg.Content.ItemsPath)
	assert.Equal(t, "/data/monsters", cfg.Content.MonstersPath)
	assert.Equal(t, "/data/scenes", cfg.Content.ScenesPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_DefaultsFillMissingSections(t *testing.T) {
	path := writeConfig(t, `
content:
  items_path: /custom/items
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/custom/items", cfg.Content.ItemsPath)
	assert.Equal(t, "data/monsters", cfg.Content.MonstersPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, "data/items", cfg.Content.ItemsPath)
	assert.Equal(t, "data/scenes", cfg.Content.ScenesPath)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := config.Config{
		Content: config.ContentConfig{},
		Logging: config.LoggingConfig{Level: "trace", Format: "xml"},
	}
	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "content.items_path must not be empty")
	assert.Contains(t, err.Error(), "content.monsters_path must not be empty")
	assert.Contains(t, err.Error(), "content.scenes_path must not be empty")
	assert.Contains(t, err.Error(), "logging.level must be one of")
	assert.Contains(t, err.Error(), "logging.format must be one of")
}

func TestLoad_InvalidLoggingRejected(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: loud
`)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}
