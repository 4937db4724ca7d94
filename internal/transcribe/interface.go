package transcribe

import "context"

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe transcribes an audio file and returns the result.
	// language is a human-readable name ("english", "french", ...) or
	// empty to request auto-detection from the service.
	Transcribe(ctx context.Context, audioPath, language string) (*Result, error)

	// Name returns the name of the provider (e.g., "groq", "openai")
	Name() string
}

// Result represents the result of a speech-to-text transcription
type Result struct {
	Transcript string // The transcribed text, already normalized
	Language   string // Language code sent to the service ("" = auto-detect)
	Provider   string // The provider used (e.g., "groq")
}
