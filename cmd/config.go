package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the configuration of the cfo tool.
//
// Values come from, in increasing priority: defaults, the TOML config file,
// CFO_* environment variables and command line flags.
type Config struct {
	Ledger   string        `toml:"ledger"`   // Path to the ledger snapshot (JSON).
	Currency string        `toml:"currency"` // Currency used to display amounts.
	Quotes   QuotesConfig  `toml:"quotes"`
	Logging  LoggingConfig `toml:"logging"`
}

// QuotesConfig selects and configures the market quote source.
type QuotesConfig struct {
	Source string  `toml:"source"` // gemini, http or file.
	Model  string  `toml:"model"`  // Gemini model.
	URL    string  `toml:"url"`    // HTTP source URL, with a {symbol} placeholder.
	Path   string  `toml:"path"`   // HTTP source JSONPath to the price.
	Rate   float64 `toml:"rate"`   // HTTP source maximum requests per second.
	File   string  `toml:"file"`   // File source path.
	Cache  bool    `toml:"cache"`  // Cache HTTP responses for the day.
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn or error.
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	return &Config{
		Ledger:   "ledger.json",
		Currency: "USD",
		Quotes: QuotesConfig{
			Source: "gemini",
			Rate:   2,
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// DefaultConfigPath returns the config file used when none is given.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cfo", "config.toml")
}

// LoadConfig reads the config file at path over the defaults, then applies
// the environment overrides.
//
// A missing file is not an error unless required is true.
func LoadConfig(path string, required bool) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err) && !required:
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("CFO_LEDGER_FILE"); v != "" {
		config.Ledger = v
	}
	if v := os.Getenv("CFO_CURRENCY"); v != "" {
		config.Currency = v
	}
	if v := os.Getenv("CFO_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("CFO_QUOTES_SOURCE"); v != "" {
		config.Quotes.Source = v
	}
	if v := os.Getenv("CFO_QUOTES_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CFO_QUOTES_RATE %q: %w", v, err)
		}
		config.Quotes.Rate = rate
	}
	return nil
}
