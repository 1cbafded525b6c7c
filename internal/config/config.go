package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportConfig holds defaults for the export and watch commands
type ExportConfig struct {
	// Format is the report format (json, markdown, html)
	Format string `yaml:"format"`

	// Pretty indents JSON output
	Pretty bool `yaml:"pretty"`

	// Output is the report path; empty writes to stdout
	Output string `yaml:"output"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	// Debounce coalesces bursts of file changes into one regeneration
	Debounce time.Duration `yaml:"debounce"`
}

// Config represents ccwrapped configuration options
type Config struct {
	// ClaudeDir is the assistant data directory holding history.jsonl,
	// projects/ and usage-data/facets/
	ClaudeDir string `yaml:"claude_dir"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-run log files when non-empty
	LogDir string `yaml:"log_dir"`

	// Timezone is the IANA zone used for calendar days and hours ("Local" = system zone)
	Timezone string `yaml:"timezone"`

	// Workers bounds concurrent transcript parsing
	Workers int `yaml:"workers"`

	Export ExportConfig `yaml:"export"`
	Watch  WatchConfig  `yaml:"watch"`
}

var validFormats = map[string]bool{
	"json":     true,
	"markdown": true,
	"html":     true,
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		ClaudeDir: "",
		LogLevel:  "info",
		LogDir:    "",
		Timezone:  "Local",
		Workers:   8,
		Export: ExportConfig{
			Format: "json",
			Pretty: true,
			Output: "",
		},
		Watch: WatchConfig{
			Debounce: 2 * time.Second,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// durations are decoded as strings so "2s" style values work
	type yamlWatch struct {
		Debounce string `yaml:"debounce"`
	}
	type yamlExport struct {
		Format string `yaml:"format"`
		Pretty *bool  `yaml:"pretty"`
		Output string `yaml:"output"`
	}
	type yamlConfig struct {
		ClaudeDir string     `yaml:"claude_dir"`
		LogLevel  string     `yaml:"log_level"`
		LogDir    string     `yaml:"log_dir"`
		Timezone  string     `yaml:"timezone"`
		Workers   int        `yaml:"workers"`
		Export    yamlExport `yaml:"export"`
		Watch     yamlWatch  `yaml:"watch"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.ClaudeDir != "" {
		cfg.ClaudeDir = yamlCfg.ClaudeDir
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Timezone != "" {
		cfg.Timezone = yamlCfg.Timezone
	}
	if yamlCfg.Workers != 0 {
		cfg.Workers = yamlCfg.Workers
	}
	if yamlCfg.Export.Format != "" {
		cfg.Export.Format = yamlCfg.Export.Format
	}
	if yamlCfg.Export.Pretty != nil {
		cfg.Export.Pretty = *yamlCfg.Export.Pretty
	}
	if yamlCfg.Export.Output != "" {
		cfg.Export.Output = yamlCfg.Export.Output
	}
	if yamlCfg.Watch.Debounce != "" {
		debounce, err := time.ParseDuration(yamlCfg.Watch.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch.debounce format %q: %w", yamlCfg.Watch.Debounce, err)
		}
		cfg.Watch.Debounce = debounce
	}

	return cfg, nil
}

// LoadConfigFromDir loads config.yaml from the given ccwrapped home directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(claudeDir *string, logLevel *string, timezone *string, workers *int) {
	if claudeDir != nil {
		c.ClaudeDir = *claudeDir
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if timezone != nil {
		c.Timezone = *timezone
	}
	if workers != nil {
		c.Workers = *workers
	}
}

// Location resolves Timezone into a *time.Location
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}

	if !validFormats[c.Export.Format] {
		return fmt.Errorf("invalid export.format %q, must be one of: json, markdown, html", c.Export.Format)
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0, got %v", c.Watch.Debounce)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}
