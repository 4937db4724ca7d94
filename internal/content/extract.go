package content

import "strings"

// ExtractJSON pulls the JSON candidate out of free-form model text.
// Precedence: a fenced ```json block if present, then a plain fenced
// block, otherwise the whole trimmed text. Pure function; parsing and
// validation happen at the call site.
func ExtractJSON(raw string) string {
	text := strings.TrimSpace(raw)

	if start := strings.Index(text, "```json"); start >= 0 {
		rest := text[start+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	return text
}
