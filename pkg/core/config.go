// pkg/core/config.go
package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the tool itself
const (
	EnvConfig = "WXCONFIG_CONFIG"
	EnvDebug  = "WXCONFIG_DEBUG"
)

// Config holds wx-config configuration
type Config struct {
	Prefix   string `yaml:"prefix"`
	WxCfg    string `yaml:"wxcfg"`
	EasyMode bool   `yaml:"easymode"`
	Debug    bool   `yaml:"debug"`
	Profiles string `yaml:"profiles"`
	Registry string `yaml:"registry"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug: debugFromEnv(),
	}
}

// DefaultConfigPath returns WXCONFIG_CONFIG or $HOME/.config/wx-config/config.yaml
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wx-config", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults. On a malformed file the defaults are returned along with the error.
func LoadConfig(fsys afero.Fs, path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if debugFromEnv() {
		cfg.Debug = true
	}

	return cfg, nil
}

func debugFromEnv() bool {
	switch os.Getenv(EnvDebug) {
	case "1", "true", "yes":
		return true
	}
	return false
}
