package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// parseEnv overlays cfg with CONTACTBOOK_* environment variables. Unset
// variables keep the current value.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
