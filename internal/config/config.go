// Package config loads the application configuration from an optional
// YAML file with environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	API API       `mapstructure:"api"      yaml:"api"`
	DB  Database  `mapstructure:"database" yaml:"database"`
	Log Logging   `mapstructure:"logging"  yaml:"logging"`
	LLM Narrative `mapstructure:"llm"      yaml:"llm"`
}

// API holds the HTTP server settings.
type API struct {
	Port        string `mapstructure:"port"          yaml:"port"`
	URL         string `mapstructure:"url"           yaml:"url"` // public base URL of the API, used for response links
	CORSOrigins string `mapstructure:"cors_origins"  yaml:"cors_origins"`
	EnablePprof bool   `mapstructure:"enable_pprof"  yaml:"enable_pprof"`
}

// Database holds the SQLite settings.
type Database struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Logging holds the logging settings.
type Logging struct {
	Format string `mapstructure:"format" yaml:"format"` // "human" or "json"
}

// Narrative holds the LLM provider settings for narrative generation.
type Narrative struct {
	Provider string        `mapstructure:"provider" yaml:"provider"` // "anthropic" or "openai"
	APIKey   string        `mapstructure:"api_key"  yaml:"api_key"`
	Model    string        `mapstructure:"model"    yaml:"model"`
	BaseURL  string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"  yaml:"timeout"`
}

// Load reads the configuration from ./config/config.yaml (if present)
// and the environment. Environment variables override file values and
// use the prefix ADVISOR, e.g. ADVISOR_LLM_API_KEY.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The config file is optional, defaults plus env vars are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.url", "http://localhost:8080")
	v.SetDefault("api.cors_origins", "")
	v.SetDefault("api.enable_pprof", false)

	v.SetDefault("database.path", "data/advisor.db")

	v.SetDefault("logging.format", "json")

	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", 30*time.Second)
}
