package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the game binaries.
type Config struct {
	DatabaseURL string `env:"COREBREAKER_DATABASE_URL" envDefault:"sqlite://corebreaker.db"`
	SaveSlot    string `env:"COREBREAKER_SAVE_SLOT" envDefault:"default"`
	LogLevel    string `env:"COREBREAKER_LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"COREBREAKER_HTTP_PORT" envDefault:"8080"`
	// Seed of 0 means a fresh random seed per engine
	Seed int64 `env:"COREBREAKER_SEED" envDefault:"0"`
}

// Load reads the optional dotenv files, then parses the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %v", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %v", err)
	}
	return cfg, nil
}
