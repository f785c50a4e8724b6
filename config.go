package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the editor's TOML config, read from ~/.flode.toml. Every field
// has a working default so a missing or broken file never blocks startup.
type Config struct {
	SaveDirectory string  `toml:"save_directory"`
	DefaultZoom   float64 `toml:"default_zoom"`
	ConfirmQuit   bool    `toml:"confirm_quit"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		DefaultZoom:   1.0,
		ConfirmQuit:   true,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".flode.toml"))
}

func loadConfigFrom(path string) *Config {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return defaultConfig()
	}

	if strings.HasPrefix(config.SaveDirectory, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			config.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(config.SaveDirectory, "~"))
		}
	}
	config.DefaultZoom = clampZoom(config.DefaultZoom)
	return config
}

// SavePath resolves a filename against the configured save directory.
func (c *Config) SavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
