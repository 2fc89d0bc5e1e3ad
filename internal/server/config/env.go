package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/identcore/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays IDENTCORE_* environment variables. When -env names a
// dotenv file it is loaded first; variables already present in the process
// environment take precedence over the file. Unset variables leave the
// current value untouched.
func parseEnv(config *Config) error {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}
