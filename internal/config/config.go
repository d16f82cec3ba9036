// Package config loads configuration from environment variables.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the configuration values for the application.
type Config struct {
	Region      string
	Bucket      string
	Table       string
	Environment string
	LogLevel    string
	EndpointURL string
}

// Load reads the environment and returns the service configuration.
// The bucket and table names have no sensible defaults; a missing value is
// returned as an error so the caller can degrade instead of crashing.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("region", "us-east-1")
	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "info")

	_ = v.BindEnv("region", "AWS_REGION")
	_ = v.BindEnv("bucket", "S3_BUCKET_NAME")
	_ = v.BindEnv("table", "DYNAMODB_TABLE_NAME")
	_ = v.BindEnv("environment", "ENVIRONMENT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("endpoint_url", "AWS_ENDPOINT_URL")

	cfg := Config{
		Region:      v.GetString("region"),
		Bucket:      v.GetString("bucket"),
		Table:       v.GetString("table"),
		Environment: v.GetString("environment"),
		LogLevel:    v.GetString("log_level"),
		EndpointURL: v.GetString("endpoint_url"),
	}

	if cfg.Bucket == "" {
		return Config{}, errors.New("S3_BUCKET_NAME environment variable not set")
	}
	if cfg.Table == "" {
		return Config{}, errors.New("DYNAMODB_TABLE_NAME environment variable not set")
	}
	return cfg, nil
}
