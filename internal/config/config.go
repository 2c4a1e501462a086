package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	API      API     `envPrefix:"API_"`
	Storage  Storage `envPrefix:"STORAGE_"`
	Roaming  Roaming `envPrefix:"MINIO_"`
}

// API contains backend API parameters.
type API struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:4000/api"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Storage contains local snapshot storage parameters.
type Storage struct {
	Dir string `env:"DIR" envDefault:".parve"`
}

// Roaming contains object-storage parameters for the optional roaming
// snapshot backend.
type Roaming struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"parve-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"parve-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"parve-state"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
