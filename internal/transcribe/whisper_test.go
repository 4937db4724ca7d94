package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWhisperProviderMissingFile(t *testing.T) {
	p := NewWhisperProvider("groq", "test-key", "http://127.0.0.1:0", "whisper-large-v3-turbo")
	_, err := p.Transcribe(context.Background(), "/nonexistent/audio.mp3", "")
	if !errors.Is(err, ErrAudioNotFound) {
		t.Fatalf("expected ErrAudioNotFound, got %v", err)
	}
}

func TestWhisperProviderUnsupportedLanguage(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "episode.mp3")
	if err := os.WriteFile(audio, []byte("fake audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewWhisperProvider("groq", "test-key", "http://127.0.0.1:0", "whisper-large-v3-turbo")
	_, err := p.Transcribe(context.Background(), audio, "klingon")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestNewProviderDefaults(t *testing.T) {
	p, err := NewProvider(ProviderConfig{APIKey: "key"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "groq" {
		t.Fatalf("default provider = %s, want groq", p.Name())
	}
}

func TestNewProviderRejectsUnknown(t *testing.T) {
	if _, err := NewProvider(ProviderConfig{Provider: "acme", APIKey: "key"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderRequiresKey(t *testing.T) {
	if _, err := NewProvider(ProviderConfig{Provider: "groq"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
