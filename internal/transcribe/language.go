package transcribe

import (
	"fmt"
	"strings"
)

// languageCodes maps common language names to Whisper language codes.
// Closed lookup; extend as new languages are verified against the service.
var languageCodes = map[string]string{
	"english": "en",
	"french":  "fr",
	"spanish": "es",
	"hindi":   "hi",
	"german":  "de",
	"italian": "it",
}

// MapLanguage converts a human-readable language name to the two-letter
// code expected by the transcription service. The empty string means the
// caller wants auto-detection and maps to the empty code. Unknown names
// fail with ErrUnsupportedLanguage.
func MapLanguage(language string) (string, error) {
	if language == "" {
		return "", nil
	}
	code, ok := languageCodes[strings.ToLower(language)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}
	return code, nil
}
