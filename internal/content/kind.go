package content

import (
	"fmt"
	"strings"
)

// Kind identifies one generated artifact type.
type Kind string

const (
	KindBlog       Kind = "blog"
	KindSEO        Kind = "seo"
	KindFAQ        Kind = "faq"
	KindSocial     Kind = "social"
	KindNewsletter Kind = "newsletter"
	KindQuotes     Kind = "quotes"
)

// AllKinds is the default artifact set when a caller does not pick one.
var AllKinds = []Kind{KindBlog, KindSEO, KindFAQ, KindSocial, KindNewsletter, KindQuotes}

// ParseKinds validates caller-supplied kind names, dropping duplicates
// while preserving order.
func ParseKinds(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return append([]Kind(nil), AllKinds...), nil
	}
	seen := make(map[Kind]bool, len(names))
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		kind := Kind(strings.ToLower(strings.TrimSpace(name)))
		switch kind {
		case KindBlog, KindSEO, KindFAQ, KindSocial, KindNewsletter, KindQuotes:
		default:
			return nil, fmt.Errorf("unknown content type: %s", name)
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// DependsOnBlog reports whether a kind takes the generated blog body as
// input rather than the transcript. These kinds are skipped when no blog
// body exists.
func DependsOnBlog(kind Kind) bool {
	switch kind {
	case KindSEO, KindSocial, KindNewsletter:
		return true
	default:
		return false
	}
}
