package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME.
const AppDir = ".pipemania"

// LoadPipe loads the pipemania configuration. Missing keys keep their defaults.
// Search order: customPath -> ~/.pipemania/configs/pipemania.yaml -> ./configs/pipemania.yaml -> embedded default
func LoadPipe(customPath string) (PipeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultPipeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "pipemania.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "pipemania.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultPipeConfig()
	if err := yaml.Unmarshal(defaultPipeYAML, &cfg); err != nil {
		return DefaultPipeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile(path string) (PipeConfig, bool) {
	cfg := DefaultPipeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// UserPath joins elem under ~/.pipemania. Returns "" if home is unknown.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
