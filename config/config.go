package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appDir = "vimshady"

// Config is the persisted window geometry, stored as TOML in the per-user
// config directory. The render loop reads it at startup and writes it back
// when the window closes.
type Config struct {
	WindowX      int `toml:"window_x"`
	WindowY      int `toml:"window_y"`
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
}

func Default() Config {
	return Config{WindowWidth: 640, WindowHeight: 480}
}

// Path returns the config file location for the current user.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir, "config.toml"), nil
}

// Load reads the stored geometry, falling back to defaults when the file is
// absent or unreadable.
func Load() Config {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the geometry, creating the config directory if needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
