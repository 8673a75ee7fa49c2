package config

import (
	"fmt"
	"time"
)

// Config holds environment-driven application configuration.
type Config struct {
	Environment string `envconfig:"SF_ENV" default:"development"`

	WorkerCount      int           `envconfig:"SF_WORKER_COUNT" default:"2"`
	PollTimeout      time.Duration `envconfig:"SF_POLL_TIMEOUT" default:"100ms"`
	DownloadDuration time.Duration `envconfig:"SF_DOWNLOAD_DURATION" default:"5s"`

	Language string `envconfig:"SF_LANGUAGE" default:"system"`

	LogLevel  string `envconfig:"SF_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"SF_LOG_FORMAT" default:"text"`
}

// Validate checks the configuration for invalid values.
// Returns an error describing the first invalid setting found.
func (c *Config) Validate() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("worker count must be positive: %d", c.WorkerCount)
	}

	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive: %s", c.PollTimeout)
	}

	if c.DownloadDuration <= 0 {
		return fmt.Errorf("download duration must be positive: %s", c.DownloadDuration)
	}

	return nil
}
