package transcribe

import (
	"fmt"
	"log"
	"strings"
)

const (
	groqBaseURL  = "https://api.groq.com/openai/v1"
	defaultModel = "whisper-large-v3-turbo"
)

// ProviderConfig selects and configures an STT provider.
type ProviderConfig struct {
	Provider string // "groq" (default) or "openai"
	APIKey   string
	BaseURL  string // override the provider's default endpoint
	Model    string // whisper model variant
}

// NewProvider creates an STT provider from configuration.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	name := strings.ToLower(cfg.Provider)
	if name == "" {
		name = "groq"
		log.Printf("[STT Factory] provider not set, defaulting to 'groq'")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key for STT provider %s is not set", name)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	switch name {
	case "groq":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		return NewWhisperProvider("groq", cfg.APIKey, baseURL, model), nil
	case "openai":
		return NewWhisperProvider("openai", cfg.APIKey, cfg.BaseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: groq, openai", name)
	}
}
