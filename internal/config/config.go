package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// CurrentVersion is the config schema version this build reads.
const CurrentVersion = 1

// Config represents the complete devkit configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Recommend  RecommendConfig  `json:"recommend" mapstructure:"recommend"`
	Importance ImportanceConfig `json:"importance" mapstructure:"importance"`
	Catalog    CatalogConfig    `json:"catalog" mapstructure:"catalog"`
	SEO        SEOConfig        `json:"seo" mapstructure:"seo"`
	Export     ExportConfig     `json:"export" mapstructure:"export"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`

	// Root is the project directory relative paths are resolved against.
	// It is set by LoadConfig and never saved.
	Root string `json:"-" mapstructure:"-"`
}

// RecommendConfig contains recommendation merger limits
type RecommendConfig struct {
	MaxResults   int `json:"maxResults" mapstructure:"maxResults"`
	HistoryLimit int `json:"historyLimit" mapstructure:"historyLimit"`
}

// ImportanceConfig contains importance scoring parameters
type ImportanceConfig struct {
	// Alpha weights outbound journey edges; must be in (0, 1]
	Alpha float64 `json:"alpha" mapstructure:"alpha"`
}

// CatalogConfig points at optional data files overriding the built-in catalog
type CatalogConfig struct {
	DirectoryPath string `json:"directoryPath" mapstructure:"directoryPath"`
	JourneysPath  string `json:"journeysPath" mapstructure:"journeysPath"`
}

// SEOConfig contains internal-link planning limits
type SEOConfig struct {
	LinkLimit int `json:"linkLimit" mapstructure:"linkLimit"`
	HubCount  int `json:"hubCount" mapstructure:"hubCount"`
}

// ExportConfig contains site export defaults
type ExportConfig struct {
	Format      string `json:"format" mapstructure:"format"`
	Compression string `json:"compression" mapstructure:"compression"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`

	// File additionally writes logs to this path, relative to the project root
	File       string `json:"file,omitempty" mapstructure:"file"`
	MaxSize    string `json:"maxSize,omitempty" mapstructure:"maxSize"` // e.g. "10MB"; empty disables rotation
	MaxBackups int    `json:"maxBackups,omitempty" mapstructure:"maxBackups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Recommend: RecommendConfig{
			MaxResults:   10,
			HistoryLimit: 5,
		},
		Importance: ImportanceConfig{
			Alpha: 0.5,
		},
		SEO: SEOConfig{
			LinkLimit: 8,
			HubCount:  5,
		},
		Export: ExportConfig{
			Format:      "json",
			Compression: "none",
		},
		Logging: LoggingConfig{
			Format:     "human",
			Level:      "warn",
			MaxBackups: 3,
		},
	}
}

// Dir is the per-project configuration directory.
const Dir = ".devkit"

// EnvPrefix prefixes environment overrides, e.g. DEVKIT_RECOMMEND_MAXRESULTS.
const EnvPrefix = "DEVKIT"

func newViper(root string) *viper.Viper {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("recommend.maxResults", def.Recommend.MaxResults)
	v.SetDefault("recommend.historyLimit", def.Recommend.HistoryLimit)
	v.SetDefault("importance.alpha", def.Importance.Alpha)
	v.SetDefault("catalog.directoryPath", def.Catalog.DirectoryPath)
	v.SetDefault("catalog.journeysPath", def.Catalog.JourneysPath)
	v.SetDefault("seo.linkLimit", def.SEO.LinkLimit)
	v.SetDefault("seo.hubCount", def.SEO.HubCount)
	v.SetDefault("export.format", def.Export.Format)
	v.SetDefault("export.compression", def.Export.Compression)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.maxSize", def.Logging.MaxSize)
	v.SetDefault("logging.maxBackups", def.Logging.MaxBackups)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, Dir))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from .devkit/config.json under root, with
// DEVKIT_ environment variables taking precedence. A missing file yields
// the defaults. File paths are kept relative; see ResolvePath.
func LoadConfig(root string) (*Config, error) {
	v := newViper(root)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &ConfigError{Field: "file", Message: err.Error()}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Field: "file", Message: err.Error()}
	}

	cfg.Root = root
	return &cfg, nil
}

// ResolvePath returns p joined to the project root unless p is empty or
// absolute. Paths are stored as written so Save keeps them portable.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// Save writes the configuration to .devkit/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return &ConfigError{Field: "version", Message: fmt.Sprintf("unsupported config version %d", c.Version)}
	}
	if c.Recommend.MaxResults <= 0 {
		return &ConfigError{Field: "recommend.maxResults", Message: "must be positive"}
	}
	if c.Recommend.HistoryLimit <= 0 {
		return &ConfigError{Field: "recommend.historyLimit", Message: "must be positive"}
	}
	if c.Importance.Alpha <= 0 || c.Importance.Alpha > 1 {
		return &ConfigError{Field: "importance.alpha", Message: "must be in (0, 1]"}
	}
	if c.SEO.LinkLimit <= 0 {
		return &ConfigError{Field: "seo.linkLimit", Message: "must be positive"}
	}
	if c.SEO.HubCount < 0 {
		return &ConfigError{Field: "seo.hubCount", Message: "must not be negative"}
	}
	if !oneOf(c.Export.Format, "json", "yaml", "toml", "markdown") {
		return &ConfigError{Field: "export.format", Message: fmt.Sprintf("unknown format %q", c.Export.Format)}
	}
	if !oneOf(c.Export.Compression, "none", "gzip", "zstd") {
		return &ConfigError{Field: "export.compression", Message: fmt.Sprintf("unknown compression %q", c.Export.Compression)}
	}
	if !oneOf(c.Logging.Format, "human", "json") {
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	if !oneOf(strings.ToLower(c.Logging.Level), "debug", "info", "warn", "warning", "error") {
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	if c.Logging.MaxBackups < 0 {
		return &ConfigError{Field: "logging.maxBackups", Message: "must not be negative"}
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	return slices.Contains(allowed, v)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
