package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/cairn/internal/logger"
	"github.com/harrison/cairn/internal/models"
	"github.com/harrison/cairn/internal/theme"
)

// Config represents the persistent presentation defaults of cairn
type Config struct {
	// Colours, Icons and Hyperlink take always, auto or never
	Colours   string `yaml:"colours"`
	Icons     string `yaml:"icons"`
	Hyperlink string `yaml:"hyperlink"`

	// Headers prints a header row above column output
	Headers bool `yaml:"headers"`

	// QuoteName is auto, single, double or never
	QuoteName string `yaml:"quote_name"`

	DateFormat       string `yaml:"date_format"`
	NumberFormat     string `yaml:"number_format"`
	OwnershipFormat  string `yaml:"ownership_format"`
	PermissionFormat string `yaml:"permission_format"`
	SizeFormat       string `yaml:"size_format"`

	// Sort is the default sort key
	Sort string `yaml:"sort"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Theme overrides individual colours of the built-in palette
	Theme theme.Theme `yaml:"theme"`
}

// DefaultConfig returns a Config matching the built-in listing defaults
func DefaultConfig() *Config {
	opts := models.DefaultOptions()
	return &Config{
		Colours:          string(opts.Colours),
		Icons:            string(opts.Icons),
		Hyperlink:        string(opts.Hyperlink),
		Headers:          opts.Headers,
		QuoteName:        string(opts.QuoteName),
		DateFormat:       string(opts.DateFormat),
		NumberFormat:     string(opts.NumberFormat),
		OwnershipFormat:  string(opts.OwnershipFormat),
		PermissionFormat: string(opts.PermissionFormat),
		SizeFormat:       string(opts.SizeFormat),
		Sort:             string(opts.Sort),
		LogLevel:         "warn",
		Theme:            theme.Default(),
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// the theme decodes over the defaults so unnamed colours are kept
	fileCfg := Config{Theme: cfg.Theme}
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Strings merge when non-empty; headers merges only when the key is
	// present so "headers: false" is honoured
	mergeString(&cfg.Colours, fileCfg.Colours)
	mergeString(&cfg.Icons, fileCfg.Icons)
	mergeString(&cfg.Hyperlink, fileCfg.Hyperlink)
	mergeString(&cfg.QuoteName, fileCfg.QuoteName)
	mergeString(&cfg.DateFormat, fileCfg.DateFormat)
	mergeString(&cfg.NumberFormat, fileCfg.NumberFormat)
	mergeString(&cfg.OwnershipFormat, fileCfg.OwnershipFormat)
	mergeString(&cfg.PermissionFormat, fileCfg.PermissionFormat)
	mergeString(&cfg.SizeFormat, fileCfg.SizeFormat)
	mergeString(&cfg.Sort, fileCfg.Sort)
	mergeString(&cfg.LogLevel, fileCfg.LogLevel)
	cfg.Theme = fileCfg.Theme

	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["headers"]; exists {
			cfg.Headers = fileCfg.Headers
		}
	}

	return cfg, nil
}

// Load resolves the config file location and loads it
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = strings.ToLower(strings.TrimSpace(value))
	}
}

// ApplyTo copies config values into opts for every setting whose flag was
// not given on the command line. changed reports whether a flag was set.
func (c *Config) ApplyTo(opts *models.Options, changed func(flag string) bool) {
	if !changed("colours") {
		opts.Colours = models.When(c.Colours)
	}
	if !changed("icons") {
		opts.Icons = models.When(c.Icons)
	}
	if !changed("hyperlink") {
		opts.Hyperlink = models.When(c.Hyperlink)
	}
	if !changed("headers") {
		opts.Headers = c.Headers
	}
	if !changed("quote-name") {
		opts.QuoteName = models.QuoteStyle(c.QuoteName)
	}
	if !changed("date-format") {
		opts.DateFormat = models.DateFormat(c.DateFormat)
	}
	if !changed("number-format") {
		opts.NumberFormat = models.NumberFormat(c.NumberFormat)
	}
	if !changed("ownership-format") {
		opts.OwnershipFormat = models.OwnershipFormat(c.OwnershipFormat)
	}
	if !changed("permission-format") {
		opts.PermissionFormat = models.PermissionFormat(c.PermissionFormat)
	}
	if !changed("size-format") {
		opts.SizeFormat = models.SizeFormat(c.SizeFormat)
	}
	if !changed("sort") {
		opts.Sort = models.SortBy(c.Sort)
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	// enumerations share their rules with the command line
	opts := models.DefaultOptions()
	c.ApplyTo(&opts, func(string) bool { return false })
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
