package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/embudo/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultSimilarNameThreshold is the edit distance under which two stage
// names are reported as look-alikes
const DefaultSimilarNameThreshold = 2

// Config represents the application configuration
type Config struct {
	DatabasePath         string      `yaml:"database_path"`
	Palette              []string    `yaml:"palette"`
	DefaultStages        []string    `yaml:"default_stages"`
	SimilarNameThreshold int         `yaml:"similar_name_threshold"`
	KeyMappings          KeyMappings `yaml:"key_mappings"`
	ColorScheme          ColorScheme `yaml:"theme"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from a specific file, falling back to defaults
// when the file does not exist
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "embudo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "embudo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), models.DefaultPalette...)
	}
	if len(c.DefaultStages) < models.MinStages {
		c.DefaultStages = append([]string(nil), models.DefaultStageNames...)
	}
	if c.SimilarNameThreshold <= 0 {
		c.SimilarNameThreshold = DefaultSimilarNameThreshold
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets EMBUDO_DB override the database path
func (c *Config) applyEnv() {
	if p := os.Getenv("EMBUDO_DB"); p != "" {
		c.DatabasePath = p
	}
}
