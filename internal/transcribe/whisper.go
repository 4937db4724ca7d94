package transcribe

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

// WhisperProvider implements STT against any OpenAI-compatible
// audio/transcriptions endpoint (Groq, OpenAI).
type WhisperProvider struct {
	client *openai.Client
	name   string
	model  string
}

// NewWhisperProvider creates a provider for the given endpoint.
// baseURL may be empty for the OpenAI default.
func NewWhisperProvider(name, apiKey, baseURL, model string) *WhisperProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &WhisperProvider{
		client: openai.NewClientWithConfig(cfg),
		name:   name,
		model:  model,
	}
}

// Name returns the provider name
func (p *WhisperProvider) Name() string {
	return p.name
}

// Transcribe sends the audio file to the service and returns the
// normalized transcript. The language hint is mapped to a service code
// before the call; an empty hint requests auto-detection.
func (p *WhisperProvider) Transcribe(ctx context.Context, audioPath, language string) (*Result, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
	}

	code, err := MapLanguage(language)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log.Printf("[%s STT] Transcribing %s (model=%s, language=%q)", p.name, audioPath, p.model, code)

	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       p.model,
		FilePath:    audioPath,
		Language:    code,
		Temperature: 0,
		Format:      openai.AudioResponseFormatText,
	})
	if err != nil {
		return nil, &ServiceError{Provider: p.name, Err: err}
	}

	transcript := Normalize(resp.Text)
	if transcript == "" {
		return nil, &ServiceError{Provider: p.name, Err: fmt.Errorf("empty transcript returned")}
	}

	log.Printf("[%s STT] Transcription successful: length=%d, duration=%v",
		p.name, len(transcript), time.Since(start))

	return &Result{
		Transcript: transcript,
		Language:   code,
		Provider:   p.name,
	}, nil
}
