// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/atelier/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultLogLevel     = "info"
	DefaultDesignDelay  = 3000 * time.Millisecond
	DefaultPatternDelay = 3500 * time.Millisecond
	DefaultHooksFile    = ".atelier.hooks.yml"
	DefaultCartURL      = "https://www.moodfabrics.com"
)

// Config holds all configuration values for atelier.
type Config struct {
	LogLevel     string        `mapstructure:"log_level"`
	LogFile      string        `mapstructure:"log_file"`
	DesignDelay  time.Duration `mapstructure:"design_delay"`
	PatternDelay time.Duration `mapstructure:"pattern_delay"`
	CatalogFile  string        `mapstructure:"catalog_file"`
	HooksFile    string        `mapstructure:"hooks_file"`
	CartURL      string        `mapstructure:"cart_url"`
}

// fileConfig is the on-disk shape. Durations are written as strings ("3s")
// so the file stays readable.
type fileConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	DesignDelay  string `yaml:"design_delay"`
	PatternDelay string `yaml:"pattern_delay"`
	CatalogFile  string `yaml:"catalog_file"`
	HooksFile    string `yaml:"hooks_file"`
	CartURL      string `yaml:"cart_url"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		DesignDelay:  DefaultDesignDelay,
		PatternDelay: DefaultPatternDelay,
		HooksFile:    DefaultHooksFile,
		CartURL:      DefaultCartURL,
	}
}

var keys = []string{
	"log_level",
	"log_file",
	"design_delay",
	"pattern_delay",
	"catalog_file",
	"hooks_file",
	"cart_url",
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults.
// CLI flags are applied on top by the caller.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("atelier")

	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("design_delay", d.DesignDelay)
	v.SetDefault("pattern_delay", d.PatternDelay)
	v.SetDefault("catalog_file", "")
	v.SetDefault("hooks_file", d.HooksFile)
	v.SetDefault("cart_url", d.CartURL)

	// Setup ENV binding with ATELIER_ prefix
	v.SetEnvPrefix("ATELIER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key, "ATELIER_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
		logger.Debug("Loaded global config %s", globalPath)
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
		logger.Debug("Merged project config %s", projectPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects values the program cannot run with.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.DesignDelay <= 0 {
		return fmt.Errorf("design_delay must be positive, got %s", c.DesignDelay)
	}
	if c.PatternDelay <= 0 {
		return fmt.Errorf("pattern_delay must be positive, got %s", c.PatternDelay)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/atelier/atelier.yml or $XDG_CONFIG_HOME/atelier/atelier.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "atelier", "atelier.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "atelier", "atelier.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./atelier.yml in the current working directory.
func ProjectPath() string {
	return "atelier.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(fileConfig{
		LogLevel:     cfg.LogLevel,
		LogFile:      cfg.LogFile,
		DesignDelay:  cfg.DesignDelay.String(),
		PatternDelay: cfg.PatternDelay.String(),
		CatalogFile:  cfg.CatalogFile,
		HooksFile:    cfg.HooksFile,
		CartURL:      cfg.CartURL,
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
