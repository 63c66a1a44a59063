package providers

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Registry holds references to LLM clients. It supports config-driven
// instantiation, hot-reload, and provides thread-safe access.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]LLMClient
	logger  *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]LLMClient),
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register registers an LLM client by name.
func (r *Registry) Register(name string, client LLMClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = client
	if r.logger != nil {
		r.logger.Info("registered LLM client", "name", name)
	}
}

// Get returns an LLM client by name.
func (r *Registry) Get(name string) (LLMClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("LLM client not found: %s", name)
	}
	return client, nil
}

// Has checks if an LLM client is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.clients[name]
	return ok
}

// List returns all registered LLM client names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}

// RegistryConfig defines the providers to instantiate from config.
type RegistryConfig struct {
	// LLMProviders maps provider names to their config
	LLMProviders map[string]LLMProviderConfig
}

// LLMProviderConfig matches config.LLMProviderCfg with resolved API key.
type LLMProviderConfig struct {
	Type       string        // "openrouter", "openai"
	Model      string        // Default model name
	APIKey     string        // Resolved API key
	Timeout    time.Duration // HTTP timeout
	MaxRetries int           // Transport retry attempts
	Enabled    bool
}

// NewRegistryFromConfig creates a registry with providers based on
// configuration. Only enabled providers with valid API keys are registered.
func NewRegistryFromConfig(cfg RegistryConfig) *Registry {
	r := NewRegistry()
	for name, provCfg := range cfg.LLMProviders {
		if !provCfg.Enabled || provCfg.APIKey == "" {
			continue
		}
		if client := createLLMClient(provCfg); client != nil {
			r.clients[name] = client
		}
	}
	return r
}

// Reload updates the registry based on new configuration. Providers that are
// no longer configured are unregistered; providers with changed settings are
// recreated.
func (r *Registry) Reload(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := make(map[string]bool)
	for name, provCfg := range cfg.LLMProviders {
		if !provCfg.Enabled || provCfg.APIKey == "" {
			continue
		}
		want[name] = true

		existing, hasExisting := r.clients[name]
		if hasExisting && !needsUpdate(existing, provCfg) {
			continue
		}
		client := createLLMClient(provCfg)
		if client == nil {
			continue
		}
		r.clients[name] = client
		if r.logger != nil {
			if hasExisting {
				r.logger.Info("updated LLM client", "name", name, "type", provCfg.Type)
			} else {
				r.logger.Info("registered LLM client", "name", name, "type", provCfg.Type)
			}
		}
	}

	for name := range r.clients {
		if !want[name] {
			delete(r.clients, name)
			if r.logger != nil {
				r.logger.Info("unregistered LLM client", "name", name)
			}
		}
	}
}

// createLLMClient creates an LLM client based on provider type.
func createLLMClient(cfg LLMProviderConfig) LLMClient {
	switch cfg.Type {
	case "openrouter":
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:       cfg.APIKey,
			DefaultModel: cfg.Model,
			Timeout:      cfg.Timeout,
			MaxRetries:   cfg.MaxRetries,
		})
	case "openai":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:       cfg.APIKey,
			DefaultModel: cfg.Model,
			Timeout:      cfg.Timeout,
			MaxRetries:   cfg.MaxRetries,
		})
	default:
		return nil
	}
}

// needsUpdate checks if an LLM client needs to be recreated.
func needsUpdate(client LLMClient, cfg LLMProviderConfig) bool {
	switch c := client.(type) {
	case *OpenRouterClient:
		return cfg.Type != "openrouter" ||
			c.apiKey != cfg.APIKey ||
			c.defaultModel != cfg.Model
	case *OpenAIClient:
		return cfg.Type != "openai" ||
			c.apiKey != cfg.APIKey ||
			c.defaultModel != cfg.Model
	default:
		return true
	}
}
