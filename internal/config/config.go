// Package config loads askfolio configuration from defaults, a JSON
// config file, and environment variables, in that order of precedence
// (later wins).
package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Log       LogConfig
	Knowledge KnowledgeConfig
	Resume    ResumeConfig
}

type ServerConfig struct {
	Port int
	// AdminToken protects the transcript/stats endpoints. Secret:
	// settable only via ASKFOLIO_ADMIN_TOKEN. When empty the admin
	// surface is disabled.
	AdminToken string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

type KnowledgeConfig struct {
	// Path overrides the knowledge base embedded in the binary.
	Path string
}

type ResumeConfig struct {
	// Path points at the owner's resume PDF. Optional; the resume
	// endpoint returns 404 when unset.
	Path string
}

func defaults() Config {
	return Config{
		Server:  ServerConfig{Port: 4600},
		Storage: StorageConfig{DataDir: defaultDataDir()},
		Log:     LogConfig{Level: "info"},
	}
}

func defaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "askfolio-data"
		}
	}
	return filepath.Join(dir, "askfolio")
}

// Load reads configuration from the config file at
// $XDG_CONFIG_HOME/askfolio/config.json with ASKFOLIO_* environment
// variables overriding file values.
func Load() (Config, error) {
	return loadWith(newFileBackend(configFilePath()))
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()
	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// LogLevelDebug reports whether the configured log level is debug.
func (c Config) LogLevelDebug() bool {
	return strings.EqualFold(c.Log.Level, "debug")
}
