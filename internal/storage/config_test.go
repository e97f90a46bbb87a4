package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, ".storesconfig.yaml"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Run("no .storesconfig.yaml returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, DefaultDataFile, cfg.DataFile)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("full .storesconfig.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `data_file: shops.json
log_level: debug
color: never
`)

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "shops.json", cfg.DataFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ColorNever, cfg.Color)
	})

	t.Run("partial .storesconfig.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "color: always\n")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, ColorAlways, cfg.Color)
		assert.Equal(t, DefaultDataFile, cfg.DataFile) // default
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel) // default
	})

	t.Run("empty config file returns defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "data_file: [unclosed\n")

		_, err := LoadConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse .storesconfig.yaml")
	})

	t.Run("invalid color returns error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "color: rainbow\n")

		_, err := LoadConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid color "rainbow"`)
	})

	t.Run("empty data_file returns error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "data_file: \"\"\n")

		_, err := LoadConfig(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data_file")
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("env overrides config values", func(t *testing.T) {
		cfg := DefaultConfig()
		env := map[string]string{
			EnvDataFile: "/tmp/other.json",
			EnvLogLevel: "info",
		}

		cfg.ApplyEnv(func(k string) string { return env[k] })

		assert.Equal(t, "/tmp/other.json", cfg.DataFile)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("empty env keeps config values", func(t *testing.T) {
		cfg := &Config{DataFile: "mine.json", LogLevel: "error", Color: ColorNever}

		cfg.ApplyEnv(func(string) string { return "" })

		assert.Equal(t, "mine.json", cfg.DataFile)
		assert.Equal(t, "error", cfg.LogLevel)
	})
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("some", "dir", ".storesconfig.yaml"), ConfigPath(filepath.Join("some", "dir")))
}
