package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c := loadConfigFrom(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, defaultConfig(), c)
}

func TestLoadConfigParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flode.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
save_directory = "/tmp/charts"
default_zoom = 1.5
confirm_quit = false
`), 0644))

	c := loadConfigFrom(path)
	assert.Equal(t, "/tmp/charts", c.SaveDirectory)
	assert.Equal(t, 1.5, c.DefaultZoom)
	assert.False(t, c.ConfirmQuit)
}

func TestLoadConfigClampsZoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flode.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_zoom = 9.0\n"), 0644))

	c := loadConfigFrom(path)
	assert.Equal(t, maxZoom, c.DefaultZoom)
}

func TestLoadConfigBrokenFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flode.toml")
	require.NoError(t, os.WriteFile(path, []byte("= not toml ="), 0644))

	c := loadConfigFrom(path)
	assert.Equal(t, defaultConfig(), c)
}

func TestSavePathResolvesAgainstDirectory(t *testing.T) {
	dir := t.TempDir()
	c := &Config{SaveDirectory: dir}
	assert.Equal(t, filepath.Join(dir, "chart.json"), c.SavePath("chart.json"))
	assert.Equal(t, "/abs/chart.json", c.SavePath("/abs/chart.json"))

	c = &Config{}
	assert.Equal(t, "chart.json", c.SavePath("chart.json"))
}
