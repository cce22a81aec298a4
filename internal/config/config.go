package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains extractor configuration parameters.
type Config struct {
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
	Store    Store  `envPrefix:"STORE_"`
	Export   Export `envPrefix:"MINIO_"`
}

// Store contains local storage database parameters.
type Store struct {
	Path      string `env:"PATH"`
	LookupKey string `env:"LOOKUP_KEY"`
}

// Export contains object storage parameters for publishing exports.
type Export struct {
	Enabled   bool   `env:"EXPORT_ENABLED" envDefault:"false"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"elementmeta-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"elementmeta-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"elementmeta-exports"`
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
