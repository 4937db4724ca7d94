package transcribe

import "strings"

// Normalize cleans raw transcription text: newlines and carriage returns
// become spaces, runs of whitespace collapse to a single space, and the
// result is trimmed. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
