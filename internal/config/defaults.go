package config

// DefaultConfig returns the built-in configuration used when no config
// file is present. API keys reference environment variables and are
// resolved at registry construction time.
func DefaultConfig() *Config {
	return &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openrouter": {
				Type:           "openrouter",
				Model:          "anthropic/claude-3.5-sonnet",
				APIKey:         "${OPENROUTER_API_KEY}",
				Enabled:        true,
				TimeoutSeconds: 120,
				MaxRetries:     3,
			},
			"openai": {
				Type:           "openai",
				Model:          "gpt-4o-mini",
				APIKey:         "${OPENAI_API_KEY}",
				Enabled:        true,
				TimeoutSeconds: 120,
				MaxRetries:     3,
			},
		},
		Defaults: DefaultsCfg{
			Provider:    "openrouter",
			Model:       "",
			Temperature: 0.2,
			MaxTokens:   4096,
		},
	}
}
