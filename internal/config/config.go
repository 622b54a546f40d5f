package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownFormat is returned for an output format the tool cannot write
var ErrUnknownFormat = errors.New("unknown output format")

// OutputFormats lists the supported values of output_format
var OutputFormats = []string{"text", "json", "yaml", "toml"}

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	ContactsFile string     `toml:"contacts_file"` // empty means the built-in directory
	LogFile      string     `toml:"log_file"`
	OutputFormat string     `toml:"output_format"`
	UI           UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxSuggestions int    `toml:"max_suggestions"` // 0 shows every match
	Mouse          bool   `toml:"mouse"`
	ShowAvatars    bool   `toml:"show_avatars"`
	HighlightColor string `toml:"highlight_color"`
}

// Validate checks values that would only fail later
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, c.OutputFormat, OutputFormats)
	}
	if c.UI.MaxSuggestions < 0 {
		return fmt.Errorf("ui.max_suggestions must not be negative, got %d", c.UI.MaxSuggestions)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "inboxtags", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file
// does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Relative contact files are resolved against the config file
	if cfg.ContactsFile != "" && !filepath.IsAbs(cfg.ContactsFile) {
		cfg.ContactsFile = filepath.Join(filepath.Dir(path), cfg.ContactsFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		LogFile:      "inboxtags.log",
		OutputFormat: "text",
		UI: UISettings{
			MaxSuggestions: 8,
			Mouse:          true,
			ShowAvatars:    true,
			HighlightColor: "226",
		},
	}
}
