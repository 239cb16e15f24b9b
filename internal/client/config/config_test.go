package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, "contactbook.db", c.DatabasePath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "02.01.2006", c.DateLayout)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"https ok", func(c *Config) { c.ServerURL = "https://contacts.example.com/" }, ""},
		{"relative url", func(c *Config) { c.ServerURL = "localhost:5000" }, "absolute http(s) URL"},
		{"ftp", func(c *Config) { c.ServerURL = "ftp://host" }, "absolute http(s) URL"},
		{"no database", func(c *Config) { c.DatabasePath = "" }, "database path"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "unknown log level"},
		{"iso layout", func(c *Config) { c.DateLayout = "2006-01-02" }, ""},
		{"layout without fields", func(c *Config) { c.DateLayout = "date" }, "no date fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://json:1",
		"database_path": "json.db",
		"log_level": "error",
		"date_layout": "2006/01/02"
	}`), 0o600))

	t.Setenv("CONTACTBOOK_DATABASE_PATH", "env.db")
	t.Setenv("CONTACTBOOK_LOG_LEVEL", "info")
	os.Args = []string{"contactbook", "-c", path, "-l", "debug"}

	got := LoadConfig()

	want := &Config{
		ServerURL:    "http://json:1",
		DatabasePath: "env.db",
		LogLevel:     "debug",
		DateLayout:   "2006/01/02",
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"contactbook"}

	for _, k := range []string{"CONTACTBOOK_SERVER_URL", "CONTACTBOOK_DATABASE_PATH", "CONTACTBOOK_LOG_LEVEL", "CONTACTBOOK_DATE_LAYOUT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	want := defaults()
	assert.Empty(t, cmp.Diff(&want, LoadConfig()))
}
