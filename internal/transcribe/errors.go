package transcribe

import (
	"errors"
	"fmt"
)

// ErrAudioNotFound is returned when the audio path does not resolve to a file.
var ErrAudioNotFound = errors.New("audio file not found")

// ErrUnsupportedLanguage is returned when a language hint has no code mapping.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ServiceError wraps any downstream transcription service fault
// (network, auth, quota). The job cannot proceed without a transcript,
// so callers treat it as fatal.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("transcription service %s: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
