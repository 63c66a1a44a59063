package config

// Config is the top-level configuration.
type Config struct {
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
}

// LLMProviderCfg configures a single LLM provider.
type LLMProviderCfg struct {
	Type           string `mapstructure:"type" yaml:"type"`   // "openrouter", "openai"
	Model          string `mapstructure:"model" yaml:"model"` // Default model
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
}

// DefaultsCfg holds invocation defaults applied when flags are not set.
type DefaultsCfg struct {
	Provider    string  `mapstructure:"provider" yaml:"provider"`
	Model       string  `mapstructure:"model" yaml:"model"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`
}
