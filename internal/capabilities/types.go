package capabilities

// ModelCapabilities represents metadata for a specific model
type ModelCapabilities struct {
	ID          string `yaml:"id" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description" json:"description"`

	SupportsVision bool `yaml:"supports_vision" json:"supports_vision"`
	SupportsTools  bool `yaml:"supports_tools" json:"supports_tools"`

	ContextWindow int `yaml:"context_window" json:"context_window"`
	MaxOutput     int `yaml:"max_output" json:"max_output"`

	// Pricing per million tokens
	InputPer1M  float64 `yaml:"input_per_1m" json:"input_per_1m"`
	OutputPer1M float64 `yaml:"output_per_1m" json:"output_per_1m"`
}

// ProviderCapabilities represents all models for a provider.
// Models is a YAML sequence so file order is presentation order.
type ProviderCapabilities struct {
	Provider    string              `yaml:"provider" json:"provider"`
	DisplayName string              `yaml:"display_name" json:"display_name"`
	Models      []ModelCapabilities `yaml:"models" json:"models"`
}
