package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	envAPIEndpoint = "FONTSOURCES_API_ENDPOINT"
	envOutputPath  = "FONTSOURCES_OUTPUT"
	envLogLevel    = "FONTSOURCES_LOG_LEVEL"
)

func (c *Config) normalize() error {
	c.normalizeSource()
	c.normalizeHTTP()
	c.normalizePipeline()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeSource() {
	if value, ok := os.LookupEnv(envAPIEndpoint); ok && strings.TrimSpace(value) != "" {
		c.Source.APIEndpoint = value
	}
	c.Source.Name = strings.TrimSpace(c.Source.Name)
	if c.Source.Name == "" {
		c.Source.Name = defaultSourceName
	}
	c.Source.Description = strings.TrimSpace(c.Source.Description)
	c.Source.SiteURL = strings.TrimRight(strings.TrimSpace(c.Source.SiteURL), "/")
	if c.Source.SiteURL == "" {
		c.Source.SiteURL = defaultSiteURL
	}
	c.Source.APIEndpoint = strings.TrimSpace(c.Source.APIEndpoint)
	if c.Source.APIEndpoint == "" {
		c.Source.APIEndpoint = defaultAPIEndpoint
	}
	c.Source.Version = strings.TrimSpace(c.Source.Version)
	if c.Source.Version == "" {
		c.Source.Version = defaultSourceVersion
	}
	c.Source.KeyPrefix = strings.Trim(strings.TrimSpace(c.Source.KeyPrefix), ".")
	if c.Source.KeyPrefix == "" {
		c.Source.KeyPrefix = defaultKeyPrefix
	}
}

func (c *Config) normalizeHTTP() {
	if c.HTTP.TimeoutSeconds <= 0 {
		c.HTTP.TimeoutSeconds = defaultTimeoutSeconds
	}
	c.HTTP.UserAgent = strings.TrimSpace(c.HTTP.UserAgent)
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizePipeline() {
	if c.Pipeline.ProgressEvery <= 0 {
		c.Pipeline.ProgressEvery = defaultProgressEvery
	}
}

func (c *Config) normalizeOutput() error {
	if value, ok := os.LookupEnv(envOutputPath); ok && strings.TrimSpace(value) != "" {
		c.Output.Path = value
	}
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path == "" {
		c.Output.Path = defaultOutputPath
	}
	var err error
	if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = NormalizeLevel(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

// NormalizeLevel lower-cases a log level and folds "warning" into "warn".
func NormalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}
