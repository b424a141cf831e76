package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Render RenderConfig `mapstructure:"render" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RequestsPerMinute bounds how often the analyze endpoint may reach the
	// language model. Zero disables throttling.
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	BaseURL      string `mapstructure:"base_url" validate:"required,url"`
	APIVersion   string `mapstructure:"api_version" validate:"required"`

	// Retry settings for rate-limited (HTTP 429) responses.
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	BaseDelayMS int `mapstructure:"base_delay_ms" validate:"gte=1"`
	MaxJitterMS int `mapstructure:"max_jitter_ms" validate:"gte=0"`
}

// RenderConfig selects how generated Markdown is turned into HTML.
type RenderConfig struct {
	Engine   string `mapstructure:"engine" validate:"required,oneof=subset commonmark"`
	Sanitize bool   `mapstructure:"sanitize"`
}
