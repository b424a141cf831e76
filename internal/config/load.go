package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix shared by every environment variable the
// application reads.
const EnvPrefix = "CODELENS"

// Default values applied before any file or environment source.
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultRequestsPerMinute = 30
	DefaultModelName         = "gemini-2.5-flash-preview-05-20"
	DefaultBaseURL           = "https://generativelanguage.googleapis.com/"
	DefaultAPIVersion        = "v1beta"
	DefaultMaxAttempts       = 5
	DefaultBaseDelayMS       = 1000
	DefaultMaxJitterMS       = 1000
	DefaultRenderEngine      = "subset"
)

// keys lists every configuration key so that each one can be bound to its
// environment variable; viper only consults the environment during Unmarshal
// for keys it already knows about.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.requests_per_minute",
	"llm.gemini_api_key",
	"llm.model_name",
	"llm.base_url",
	"llm.api_version",
	"llm.max_attempts",
	"llm.base_delay_ms",
	"llm.max_jitter_ms",
	"render.engine",
	"render.sanitize",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.requests_per_minute", DefaultRequestsPerMinute)

	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.base_url", DefaultBaseURL)
	v.SetDefault("llm.api_version", DefaultAPIVersion)
	v.SetDefault("llm.max_attempts", DefaultMaxAttempts)
	v.SetDefault("llm.base_delay_ms", DefaultBaseDelayMS)
	v.SetDefault("llm.max_jitter_ms", DefaultMaxJitterMS)

	v.SetDefault("render.engine", DefaultRenderEngine)
	v.SetDefault("render.sanitize", true)
}
