package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports a model response that failed JSON parsing or
// schema validation for one artifact kind. Non-fatal to the job.
type ValidationError struct {
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation: %s", e.Kind, e.Reason)
}

// SEOElements is the structured record behind the seo artifact. The JSON
// tags define the canonical persisted document; length ceilings are prompt
// instructions, not validated here.
type SEOElements struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"meta_description"`
	Tags            []string `json:"tags"`
	Keywords        []string `json:"keywords"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SocialPosts holds one post per platform.
type SocialPosts struct {
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Quote is one memorable quote with optional attribution.
type Quote struct {
	Quote   string `json:"quote"`
	Speaker string `json:"speaker,omitempty"`
}

// defaultSpeaker is attributed when the model omits a speaker.
const defaultSpeaker = "The Author"

// ParseSEO extracts, parses, and validates an SEO record from raw model text.
func ParseSEO(raw string) (*SEOElements, error) {
	candidate := ExtractJSON(raw)
	var seo SEOElements
	if err := json.Unmarshal([]byte(candidate), &seo); err != nil {
		return nil, &ValidationError{Kind: KindSEO, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	var missing []string
	if strings.TrimSpace(seo.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(seo.MetaDescription) == "" {
		missing = append(missing, "meta_description")
	}
	if len(seo.Tags) == 0 {
		missing = append(missing, "tags")
	}
	if len(seo.Keywords) == 0 {
		missing = append(missing, "keywords")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Kind: KindSEO, Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return &seo, nil
}

// ParseFAQ extracts, parses, and validates the FAQ list.
func ParseFAQ(raw string) ([]FAQItem, error) {
	candidate := ExtractJSON(raw)
	var items []FAQItem
	if err := json.Unmarshal([]byte(candidate), &items); err != nil {
		return nil, &ValidationError{Kind: KindFAQ, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if len(items) == 0 {
		return nil, &ValidationError{Kind: KindFAQ, Reason: "empty FAQ list"}
	}
	for i, item := range items {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			return nil, &ValidationError{Kind: KindFAQ, Reason: fmt.Sprintf("item %d missing question or answer", i)}
		}
	}
	return items, nil
}

// ParseSocial extracts, parses, and validates the social posts record.
func ParseSocial(raw string) (*SocialPosts, error) {
	candidate := ExtractJSON(raw)
	var posts SocialPosts
	if err := json.Unmarshal([]byte(candidate), &posts); err != nil {
		return nil, &ValidationError{Kind: KindSocial, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	var missing []string
	if strings.TrimSpace(posts.Twitter) == "" {
		missing = append(missing, "twitter")
	}
	if strings.TrimSpace(posts.LinkedIn) == "" {
		missing = append(missing, "linkedin")
	}
	if strings.TrimSpace(posts.Instagram) == "" {
		missing = append(missing, "instagram")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Kind: KindSocial, Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return &posts, nil
}

// ParseQuotes extracts, parses, and validates the quote list. Missing
// speakers default to "The Author".
func ParseQuotes(raw string) ([]Quote, error) {
	candidate := ExtractJSON(raw)
	var quotes []Quote
	if err := json.Unmarshal([]byte(candidate), &quotes); err != nil {
		return nil, &ValidationError{Kind: KindQuotes, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if len(quotes) == 0 {
		return nil, &ValidationError{Kind: KindQuotes, Reason: "empty quote list"}
	}
	for i := range quotes {
		if strings.TrimSpace(quotes[i].Quote) == "" {
			return nil, &ValidationError{Kind: KindQuotes, Reason: fmt.Sprintf("item %d missing quote text", i)}
		}
		if strings.TrimSpace(quotes[i].Speaker) == "" {
			quotes[i].Speaker = defaultSpeaker
		}
	}
	return quotes, nil
}
