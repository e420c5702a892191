// Package config loads and validates orchestrator configuration.
//
// Configuration comes from three layers, lowest precedence first:
// built-in defaults, the optional staticpress.yaml file in the config
// directory, and environment variables for secrets.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the fully resolved orchestrator configuration.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Queue     *QueueConfig     `yaml:"queue"`
	Oracle    *OracleConfig    `yaml:"oracle"`
	Edge      *EdgeConfig      `yaml:"edge"`
	Measure   *MeasureConfig   `yaml:"measure"`
	Browser   *BrowserConfig   `yaml:"browser"`
	Retention *RetentionConfig `yaml:"retention"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// APIKeyEnv names the env var holding the master bearer token.
	APIKeyEnv string `yaml:"api_key_env"`
}

// EdgeConfig holds edge deployment provider settings.
type EdgeConfig struct {
	BaseURL     string `yaml:"base_url"`
	APITokenEnv string `yaml:"api_token_env"`
}

// MeasureConfig holds measurement endpoint settings.
type MeasureConfig struct {
	Endpoint  string `yaml:"endpoint"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// BrowserConfig holds the headless-browser renderer sidecar address.
type BrowserConfig struct {
	Addr string `yaml:"addr"`
}

// Initialize loads the configuration from the given directory, merging
// staticpress.yaml (if present) over built-in defaults.
func Initialize(configDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(configDir, "staticpress.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No staticpress.yaml found, using built-in defaults", "path", path)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// File values override defaults; zero values in the file are ignored.
	if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

// Validate checks the configuration for fatal problems. Missing
// credentials are a ConfigError class failure: never retried.
func (c *Config) Validate() error {
	if c.Pipeline.DataRoot == "" {
		return fmt.Errorf("pipeline.data_root must not be empty")
	}
	if c.Pipeline.CrawlConcurrency < 1 {
		return fmt.Errorf("pipeline.crawl_concurrency must be at least 1")
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be at least 1")
	}
	if c.Oracle.MaxIterations < 1 {
		return fmt.Errorf("oracle.max_iterations must be at least 1")
	}
	if c.Server.APIKeyEnv != "" && os.Getenv(c.Server.APIKeyEnv) == "" {
		return fmt.Errorf("API key env var %s is not set", c.Server.APIKeyEnv)
	}
	return nil
}

// APIKey resolves the master bearer token from the environment.
func (c *Config) APIKey() string {
	if c.Server == nil || c.Server.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Server.APIKeyEnv)
}
