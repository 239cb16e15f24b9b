// Package config loads runtime configuration for the contactbook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. CONTACTBOOK_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "database_path": "contactbook.db",
//	  "log_level": "warn",
//	  "date_layout": "02.01.2006"
//	}
package config
