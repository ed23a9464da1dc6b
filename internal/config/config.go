// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server.
type Config struct {
	Addr            string        `envconfig:"PATUNGAN_ADDR" default:":8080"`
	DBPath          string        `envconfig:"PATUNGAN_DB_PATH" default:"./data/patungan.db"`
	ShutdownTimeout time.Duration `envconfig:"PATUNGAN_SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DefaultCurrency string `envconfig:"PATUNGAN_DEFAULT_CURRENCY" default:"IDR"`

	// ReceiptExtractorURL is the endpoint of the receipt extraction service.
	// Receipt image import is disabled when empty.
	ReceiptExtractorURL     string        `envconfig:"PATUNGAN_RECEIPT_EXTRACTOR_URL"`
	ReceiptExtractorTimeout time.Duration `envconfig:"PATUNGAN_RECEIPT_EXTRACTOR_TIMEOUT" default:"20s"`

	CORSOrigin string `envconfig:"PATUNGAN_CORS_ORIGIN" default:"*"`
}

// Load reads a .env file if present, then the environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))
	if len(c.DefaultCurrency) != 3 {
		return fmt.Errorf("invalid default currency %q", c.DefaultCurrency)
	}
	switch strings.ToLower(c.LogFormat) {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid log format %q (want pretty or json)", c.LogFormat)
	}
	if c.ReceiptExtractorTimeout <= 0 {
		return errors.New("receipt extractor timeout must be positive")
	}
	return nil
}
