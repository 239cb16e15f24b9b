package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds runtime settings of the contactbook CLI.
type Config struct {
	// ServerURL is the base URL of the backend, e.g. http://localhost:5000.
	ServerURL string `env:"CONTACTBOOK_SERVER_URL"`
	// DatabasePath is the SQLite file holding the local session.
	DatabasePath string `env:"CONTACTBOOK_DATABASE_PATH"`
	LogLevel     string `env:"CONTACTBOOK_LOG_LEVEL"`
	// DateLayout is the Go time layout used to display dates of birth.
	DateLayout string `env:"CONTACTBOOK_DATE_LAYOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.DatabasePath = "contactbook.db"
	c.LogLevel = "warn"
	c.DateLayout = "02.01.2006"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("server url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server url %q: must be an absolute http(s) URL", c.ServerURL)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.DateLayout == "" || time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC).Format(c.DateLayout) == c.DateLayout {
		return fmt.Errorf("date layout %q has no date fields", c.DateLayout)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones. Malformed input panics.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
