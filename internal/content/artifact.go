package content

import (
	"encoding/json"
	"fmt"
)

// Format selects the persisted representation of an artifact.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// FormatFor returns the canonical persisted format for a kind.
func FormatFor(kind Kind) Format {
	if kind == KindSEO {
		return FormatJSON
	}
	return FormatMarkdown
}

// Artifact is one generated output unit, either a valid rendering or an
// error-artifact keeping the error and the raw model output inspectable.
type Artifact struct {
	Kind    Kind
	Format  Format
	Content string // rendered text to persist
	Err     string // non-empty marks an error-artifact
	Raw     string // raw model output, kept when generation failed
}

// Failed reports whether this is an error-artifact.
func (a *Artifact) Failed() bool { return a.Err != "" }

// newErrorArtifact converts a generation failure into a persistable
// error-artifact instead of dropping the kind silently.
func newErrorArtifact(kind Kind, raw string, err error) *Artifact {
	a := &Artifact{
		Kind:   kind,
		Format: FormatFor(kind),
		Err:    err.Error(),
		Raw:    raw,
	}
	if a.Format == FormatJSON {
		payload, merr := json.MarshalIndent(map[string]string{
			"error":        a.Err,
			"raw_response": raw,
		}, "", "  ")
		if merr != nil {
			payload = []byte(fmt.Sprintf(`{"error": %q}`, a.Err))
		}
		a.Content = string(payload)
	} else {
		a.Content = fmt.Sprintf("# Generation Error\n\n%s\n\n## Raw model output\n\n%s\n", a.Err, raw)
	}
	return a
}
