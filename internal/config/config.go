// Package config loads and validates score2pdf configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yabed/go-score2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidSetting  = errors.New("invalid config setting")
)

// Template type labels accepted in config files. Kept in sync with the
// root package constants.
const (
	templateScoreDisplay   = "score-display"
	templateScoreUpDisplay = "score-up-display"
)

// Config holds all configuration for certificate generation.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// TemplateConfig selects the default certificate layout variant.
type TemplateConfig struct {
	Type string `yaml:"type"` // "score-display" or "score-up-display" (default: "score-display")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// RenderConfig defines headless-browser rendering options.
type RenderConfig struct {
	TimeoutSeconds    int `yaml:"timeoutSeconds"`    // per-render timeout (default: 30)
	SettleDelayMillis int `yaml:"settleDelayMillis"` // post-load settle delay (default: 1000)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks that config values are usable.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	switch c.Template.Type {
	case "", templateScoreDisplay, templateScoreUpDisplay:
		// valid
	default:
		return fmt.Errorf("%w: template.type %q (must be %s or %s)",
			ErrInvalidSetting, c.Template.Type, templateScoreDisplay, templateScoreUpDisplay)
	}

	if c.Render.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: render.timeoutSeconds must not be negative, got %d",
			ErrInvalidSetting, c.Render.TimeoutSeconds)
	}
	if c.Render.SettleDelayMillis < 0 {
		return fmt.Errorf("%w: render.settleDelayMillis must not be negative, got %d",
			ErrInvalidSetting, c.Render.SettleDelayMillis)
	}

	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{Type: templateScoreDisplay},
		Output:   OutputConfig{DefaultDir: ""},
		Render:   RenderConfig{TimeoutSeconds: 30, SettleDelayMillis: 1000},
		Assets:   AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-score2pdf/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-score2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
