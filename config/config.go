package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config controls the run: where artifacts go and how logging behaves.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Level     string `yaml:"log_level"`
	Pretty    bool   `yaml:"pretty"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir: ".",
		Level:     "info",
		Pretty:    true,
	}
}

// Load reads a YAML config file, overlaying it on the defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := zerolog.ParseLevel(cfg.Level); err != nil {
		return cfg, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return cfg, nil
}

// LogLevel returns the configured zerolog level.
func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
