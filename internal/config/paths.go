package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that points at a config file
const EnvConfig = "CAIRN_CONFIG"

// Path returns the config file location
// Priority order:
//  1. CAIRN_CONFIG environment variable (if set)
//  2. $XDG_CONFIG_HOME/cairn/config.yaml
//  3. ~/.config/cairn/config.yaml
//
// The file is not required to exist.
func Path() (string, error) {
	return PathWithHome(os.UserHomeDir)
}

// PathWithHome is Path with an injectable home directory lookup
func PathWithHome(home func() (string, error)) (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "cairn", "config.yaml"), nil
	}

	dir, err := home()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(dir, ".config", "cairn", "config.yaml"), nil
}
