package config

import (
	"os"
	"path/filepath"
)

// EnvConfig overrides the config file location.
const EnvConfig = "UPM_CONFIG"

// Paths contains standard filesystem paths for upm.
type Paths struct {
	// ConfigFile is the path to the config file (~/.upm/config.yaml).
	ConfigFile string

	// HomeDir is the upm home directory (~/.upm).
	HomeDir string
}

// DefaultPaths returns the default paths for upm.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	upmHome := filepath.Join(homeDir, ".upm")

	return &Paths{
		ConfigFile: filepath.Join(upmHome, "config.yaml"),
		HomeDir:    upmHome,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
