package capabilities

import "testing"

func TestRegistryLoadsEmbeddedProviders(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}

	for _, provider := range []string{"openai", "gemini"} {
		if !registry.HasProvider(provider) {
			t.Errorf("provider %q missing from registry", provider)
		}
	}
	if registry.HasProvider("anthropic") {
		t.Error("unregistered provider reported as present")
	}
}

func TestRegistryGetModelCapabilities(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}

	caps, err := registry.GetModelCapabilities("openai", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if caps.ID != "gpt-4o-mini" {
		t.Errorf("ID = %q", caps.ID)
	}
	if caps.ContextWindow <= 0 {
		t.Errorf("context window = %d, want positive", caps.ContextWindow)
	}

	if _, err := registry.GetModelCapabilities("openai", "no-such-model"); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := registry.GetModelCapabilities("no-such-provider", "gpt-4o-mini"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestRegistryListProvidersOrder(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}

	providers := registry.ListProviders()
	if len(providers) != 2 {
		t.Fatalf("providers = %d, want 2", len(providers))
	}
	if providers[0].Provider != "openai" || providers[1].Provider != "gemini" {
		t.Errorf("order = %s, %s; want openai, gemini", providers[0].Provider, providers[1].Provider)
	}
	for _, p := range providers {
		if len(p.Models) == 0 {
			t.Errorf("provider %s has no models", p.Provider)
		}
	}
}
