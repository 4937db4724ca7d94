package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RenderSEO produces the canonical JSON document for the seo artifact.
// Field order and names match the validated record exactly so a read-back
// round-trips without loss.
func RenderSEO(seo *SEOElements) (string, error) {
	payload, err := json.MarshalIndent(seo, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render seo: %w", err)
	}
	return string(payload), nil
}

// RenderFAQ formats the FAQ list as a heading per question followed by
// the answer paragraph.
func RenderFAQ(items []FAQItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", item.Question, item.Answer)
	}
	return b.String()
}

// RenderSocial formats the three platform posts under their own headings.
func RenderSocial(posts *SocialPosts) string {
	return fmt.Sprintf(
		"# Social Media Content\n\n## Twitter Post\n\n%s\n\n## LinkedIn Post\n\n%s\n\n## Instagram Caption\n\n%s\n",
		posts.Twitter, posts.LinkedIn, posts.Instagram,
	)
}

// RenderNewsletter wraps the free-text summary under a single heading.
func RenderNewsletter(summary string) string {
	return fmt.Sprintf("# Newsletter Summary\n\n%s", strings.TrimSpace(summary))
}

// RenderQuotes formats quotes as block-quotes with attribution.
func RenderQuotes(quotes []Quote) string {
	var b strings.Builder
	b.WriteString("# Memorable Quotes\n\n")
	for _, q := range quotes {
		fmt.Fprintf(&b, "> %s\n>\n> — %s\n\n", q.Quote, q.Speaker)
	}
	return b.String()
}
