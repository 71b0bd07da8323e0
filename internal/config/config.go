package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"msgdesk/internal/directory"
	"msgdesk/internal/eventbus"
)

// Environment variables that override file settings
const (
	EnvDataFile      = "MSGDESK_DATA_FILE"
	EnvLanguage      = "MSGDESK_LANGUAGE"
	EnvDefaultFilter = "MSGDESK_DEFAULT_FILTER"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	DataFile   string     `toml:"data_file"` // empty: built-in dataset
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Language      string `toml:"language"`
	ShowStats     bool   `toml:"show_stats"`
	DefaultFilter string `toml:"default_filter"`
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
	bus      eventbus.EventBus
	logger   *zap.Logger
	filePath string
}

// DefaultPath returns <UserConfigDir>/msgdesk/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "msgdesk", "config.toml")
}

// NewConfigService creates a config service backed by path.
// An empty path uses DefaultPath. bus and logger may be nil.
func NewConfigService(path string, bus eventbus.EventBus, logger *zap.Logger) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	if bus == nil {
		bus = eventbus.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &configService{
		bus:      bus,
		logger:   logger.Named("config"),
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the service's config file, falling back to defaults when the
// file does not exist. Environment overrides are applied either way.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cs.logger.Info("no config file, using defaults", zap.String("path", cs.filePath))
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, DataFile: cfg.DataFile})
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cs.logger.Info("loaded config", zap.String("path", path))
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

	cs.logger.Info("saved config", zap.String("path", path))
	return nil
}

// ApplyEnv overrides config fields from MSGDESK_* environment variables
func ApplyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvDataFile); ok {
		cfg.DataFile = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLanguage)); v != "" {
		cfg.UISettings.Language = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDefaultFilter)); v != "" {
		cfg.UISettings.DefaultFilter = v
	}
}

// Validate checks values that cannot be caught by decoding
func (c *Config) Validate() error {
	if _, err := directory.ParseStatusFilter(c.UISettings.DefaultFilter); err != nil {
		return fmt.Errorf("ui.default_filter: %w", err)
	}
	if c.UISettings.Language != "" {
		if _, err := language.Parse(c.UISettings.Language); err != nil {
			return fmt.Errorf("ui.language %q: %w", c.UISettings.Language, err)
		}
	}
	return nil
}

// DefaultFilter returns the parsed default status filter
func (c *Config) DefaultFilter() directory.StatusFilter {
	f, err := directory.ParseStatusFilter(c.UISettings.DefaultFilter)
	if err != nil {
		return directory.FilterAll
	}
	return f
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Language:      "en",
			ShowStats:     true,
			DefaultFilter: "all",
		},
	}
}
