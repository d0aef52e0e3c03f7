package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"addressbook/internal/logging"
	"addressbook/internal/model"
	"addressbook/internal/store"
)

// Config holds runtime wiring options for building the app. Passphrase is
// never read from the YAML file. An empty DataFile means a backend-specific
// file under Home, and an empty LogFile logs to stderr.
type Config struct {
	Home         string        `yaml:"home" env:"ADDRESSBOOK_HOME"`
	Storage      store.Backend `yaml:"storage" env:"ADDRESSBOOK_STORAGE"`
	DataFile     string        `yaml:"data_file" env:"ADDRESSBOOK_DATA_FILE"`
	Passphrase   string        `yaml:"-" env:"ADDRESSBOOK_PASSPHRASE"`
	LogLevel     string        `yaml:"log_level" env:"ADDRESSBOOK_LOG_LEVEL"`
	LogFormat    string        `yaml:"log_format" env:"ADDRESSBOOK_LOG_FORMAT"`
	LogFile      string        `yaml:"log_file" env:"ADDRESSBOOK_LOG_FILE"`
	HistoryLimit int           `yaml:"history_limit" env:"ADDRESSBOOK_HISTORY_LIMIT"`
	Watch        bool          `yaml:"watch" env:"ADDRESSBOOK_WATCH"`
}

// ConfigFileName is looked up in Home when no config path is given.
const ConfigFileName = "config.yaml"

// DefaultHome returns $HOME/.addressbook, or .addressbook when the home
// directory is unknown.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".addressbook"
	}
	return filepath.Join(dir, ".addressbook")
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Home:         DefaultHome(),
		Storage:      store.BackendJSON,
		LogLevel:     "info",
		LogFormat:    string(logging.FormatText),
		HistoryLimit: model.DefaultHistoryLimit,
		Watch:        true,
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path and
// then the ADDRESSBOOK_* environment. An empty path means Home/config.yaml;
// a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if home := os.Getenv("ADDRESSBOOK_HOME"); home != "" {
		cfg.Home = home
	}
	if path == "" {
		path = filepath.Join(cfg.Home, ConfigFileName)
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DataPath is where the configured backend keeps its data: DataFile when
// set, otherwise a backend-specific name under Home.
func (c Config) DataPath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	switch c.Storage {
	case store.BackendSQLite:
		return filepath.Join(c.Home, "addressbook.db")
	case store.BackendBadger:
		return filepath.Join(c.Home, "badger")
	}
	if c.Passphrase != "" {
		return filepath.Join(c.Home, "addressbook.enc")
	}
	return filepath.Join(c.Home, "addressbook.json")
}

// Validate rejects settings the wiring cannot honour.
func (c Config) Validate() error {
	switch c.Storage {
	case store.BackendJSON, store.BackendSQLite, store.BackendBadger:
	default:
		return fmt.Errorf("config: unknown storage %q", c.Storage)
	}
	if c.Passphrase != "" && c.Storage != store.BackendJSON {
		return fmt.Errorf("config: a passphrase needs the %s storage", store.BackendJSON)
	}
	if c.HistoryLimit != 0 && c.HistoryLimit < 2 {
		return fmt.Errorf("config: history_limit must be at least 2, got %d", c.HistoryLimit)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch logging.Format(c.LogFormat) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
