package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/duelist/internal/card"
)

// DefaultMenuText is the interactive menu shown between operations.
const DefaultMenuText = "\nYu-Gi-Oh! Card Data Analysis" +
	"\n1) Check All Cards" +
	"\n2) Search Cards" +
	"\n3) View Decklist" +
	"\n4) Exit" +
	"\nEnter option: "

// DefaultFarewell is printed when the interactive menu exits.
const DefaultFarewell = "\nThanks for your support in Yu-Gi-Oh! TCG"

// Config represents the application configuration
type Config struct {
	Dataset   string `toml:"dataset"`    // Default dataset file
	ImagesDir string `toml:"images_dir"` // Directory with <id>.png/.jpg card images
	Delimiter string `toml:"delimiter"`  // Dataset field delimiter, one character

	PreviewLimit int `toml:"preview_limit"` // Rows shown by list
	NameWidth    int `toml:"name_width"`    // Display width of names

	// LegacyNameTruncation stores names truncated to NameWidth at load
	// time, so search and decklists see the shortened names too.
	LegacyNameTruncation bool `toml:"legacy_name_truncation"`

	Color     bool   `toml:"color"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Categories offered by the interactive search, by name.
	Categories []string `toml:"categories"`

	Menu MenuConfig `toml:"menu"`
}

// MenuConfig holds the texts of the interactive menu.
type MenuConfig struct {
	Text     string `toml:"text"`
	Farewell string `toml:"farewell"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Dataset:      "cards.csv",
		ImagesDir:    GetImagesDir(),
		Delimiter:    ",",
		PreviewLimit: 50,
		NameWidth:    45,
		Color:        true,
		LogLevel:     "warn",
		LogFormat:    "text",
		Categories:   card.CategoryNames(card.Categories),
		Menu: MenuConfig{
			Text:     DefaultMenuText,
			Farewell: DefaultFarewell,
		},
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCacheDir returns the duelist cache directory under XDG_CACHE_HOME
func GetCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "duelist")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache", "duelist")
}

// GetDataDir returns the duelist data directory
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), "duelist")
}

// GetImagesDir returns the default card image directory
func GetImagesDir() string {
	return filepath.Join(GetDataDir(), "images")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "duelist", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	return LoadConfigFile(GetConfigFilePath())
}

// LoadConfigFile loads the config file at configPath. Keys missing from
// the file keep their default values.
func LoadConfigFile(configPath string) (*Config, error) {
	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := DefaultConfig()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes config to configPath
func SaveConfig(configPath string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	return writeConfig(configPath, config)
}

func writeConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetDefaultDataset sets the default dataset in the config at configPath
func SetDefaultDataset(configPath, dataset string) error {
	config, err := LoadConfigFile(configPath)
	if err != nil {
		return err
	}

	config.Dataset = dataset
	return SaveConfig(configPath, config)
}

// GetDatasetPath resolves a dataset name, first as a path, then inside the
// data directory
func GetDatasetPath(dataset string) (string, error) {
	if _, err := os.Stat(dataset); err == nil {
		return dataset, nil
	}

	if !filepath.IsAbs(dataset) {
		dataPath := filepath.Join(GetDataDir(), dataset)
		if _, err := os.Stat(dataPath); err == nil {
			return dataPath, nil
		}
	}

	return "", fmt.Errorf("dataset not found: %s", dataset)
}

// Validate checks values that cannot be used as given.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.PreviewLimit < 0 {
		return fmt.Errorf("preview_limit must not be negative")
	}
	if c.NameWidth <= 0 {
		return fmt.Errorf("name_width must be positive")
	}
	if _, err := c.CategoryList(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the configured delimiter.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// CategoryList resolves the configured category names. An empty list
// means every category.
func (c *Config) CategoryList() ([]card.Category, error) {
	if len(c.Categories) == 0 {
		return card.Categories, nil
	}
	categories := make([]card.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		category, err := card.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
