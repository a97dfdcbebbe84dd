package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the import service. The league key
// table and the accepted-host set are deliberately not here: those are
// version-controlled data, not deployment knobs.
type Config struct {
	Addr           string        `env:"TDE_IMPORT_ADDR" envDefault:":8090"`
	FetchTimeout   time.Duration `env:"TDE_IMPORT_FETCH_TIMEOUT" envDefault:"30s"`
	FetchRetries   uint64        `env:"TDE_IMPORT_FETCH_RETRIES" envDefault:"0"`
	UserAgent      string        `env:"TDE_IMPORT_USER_AGENT"`
	LogLevel       string        `env:"TDE_IMPORT_LOG_LEVEL" envDefault:"INFO"`
	AllowedOrigins []string      `env:"TDE_IMPORT_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; a missing file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
