package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.LLMProviders) == 0 {
		t.Error("expected default LLM providers")
	}
	or, ok := cfg.LLMProviders["openrouter"]
	if !ok {
		t.Fatal("expected openrouter provider in defaults")
	}
	if or.APIKey != "${OPENROUTER_API_KEY}" {
		t.Error("expected openrouter API key placeholder")
	}
	if !or.Enabled {
		t.Error("expected openrouter enabled by default")
	}
	if cfg.Defaults.Provider != "openrouter" {
		t.Errorf("expected default provider openrouter, got %s", cfg.Defaults.Provider)
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		t.Setenv("TEST_API_KEY", "secret123")

		result := ResolveEnvVars("${TEST_API_KEY}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})

	t.Run("empty string passes through", func(t *testing.T) {
		if result := ResolveEnvVars(""); result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})
}

func TestConfig_ToRegistryConfig(t *testing.T) {
	t.Setenv("TEST_OPENROUTER_KEY", "or-key-123")

	cfg := &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openrouter": {
				Type:           "openrouter",
				Model:          "anthropic/claude-3.5-sonnet",
				APIKey:         "${TEST_OPENROUTER_KEY}",
				Enabled:        true,
				TimeoutSeconds: 60,
				MaxRetries:     2,
			},
			"literal": {
				Type:    "openai",
				APIKey:  "direct-key",
				Enabled: true,
			},
		},
	}

	rc := cfg.ToRegistryConfig()

	t.Run("resolves env var reference", func(t *testing.T) {
		got := rc.LLMProviders["openrouter"]
		if got.APIKey != "or-key-123" {
			t.Errorf("expected or-key-123, got %s", got.APIKey)
		}
		if got.Timeout != 60*time.Second {
			t.Errorf("expected 60s timeout, got %s", got.Timeout)
		}
		if got.MaxRetries != 2 {
			t.Errorf("expected 2 retries, got %d", got.MaxRetries)
		}
	})

	t.Run("passes literal value through", func(t *testing.T) {
		if rc.LLMProviders["literal"].APIKey != "direct-key" {
			t.Errorf("expected direct-key, got %s", rc.LLMProviders["literal"].APIKey)
		}
	})
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
llm_providers:
  custom:
    type: openrouter
    model: test-model
    api_key: test-key
    enabled: true
defaults:
  provider: custom
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		custom, ok := cfg.LLMProviders["custom"]
		if !ok {
			t.Fatal("expected custom provider from config file")
		}
		if custom.Model != "test-model" {
			t.Errorf("expected test-model, got %s", custom.Model)
		}
		if cfg.Defaults.Provider != "custom" {
			t.Errorf("expected default provider custom, got %s", cfg.Defaults.Provider)
		}
	})
}

func TestManager_OnChange(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("defaults:\n  provider: openrouter\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 2 {
		t.Errorf("expected 2 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("defaults:\n  provider: openrouter\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				cfg := mgr.Get()
				_ = cfg.Defaults.Provider
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("failed to write default config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "# Coax configuration") {
		t.Error("expected header comment")
	}
	if !strings.Contains(content, "${OPENROUTER_API_KEY}") {
		t.Error("expected openrouter key placeholder in written config")
	}
	if !strings.Contains(content, "llm_providers:") {
		t.Error("expected llm_providers section")
	}
}
