package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults radioctl reads from its optional config file.
// Command-line flags override every field.
type Config struct {
	Address      string
	Timeout      time.Duration
	VolumeStep   int
	Output       string
	Theme        string
	PollInterval time.Duration
}

const (
	defaultConfigPath   = "~/.config/radioctl/config.toml"
	defaultTimeout      = 5 * time.Second
	defaultVolumeStep   = 2
	defaultOutput       = "text"
	defaultPollInterval = 2 * time.Second
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timeout:      defaultTimeout,
		VolumeStep:   defaultVolumeStep,
		Output:       defaultOutput,
		PollInterval: defaultPollInterval,
	}
}

// fileConfig mirrors the on-disk keys for both TOML and YAML.
type fileConfig struct {
	Address      string `toml:"address" yaml:"address"`
	Timeout      string `toml:"timeout" yaml:"timeout"`
	VolumeStep   int    `toml:"volume_step" yaml:"volume_step"`
	Output       string `toml:"output" yaml:"output"`
	Theme        string `toml:"theme" yaml:"theme"`
	PollInterval string `toml:"poll_interval" yaml:"poll_interval"`
}

// Load reads the config file at path (or the default location), falling back
// to defaults when the file does not exist. Files ending in .yaml or .yml are
// parsed as YAML, anything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		if strings.TrimSpace(path) == "" {
			// No home directory means no default file to read.
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Address = strings.TrimSpace(raw.Address)
	cfg.Output = strings.TrimSpace(raw.Output)
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)
	if raw.VolumeStep > 0 {
		cfg.VolumeStep = raw.VolumeStep
	}
	if cfg.Timeout, err = parseDuration("timeout", raw.Timeout, defaultTimeout); err != nil {
		return Config{}, err
	}
	if cfg.PollInterval, err = parseDuration("poll_interval", raw.PollInterval, defaultPollInterval); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse config: %s must be positive, got %s", key, trimmed)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading "~" against the home directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
