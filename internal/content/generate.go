package content

import (
	"context"
	"fmt"
	"log"
	"strings"

	"podblog/internal/llm"
)

// maxTranscriptLen is the ceiling above which the transcript is chunked
// and summarized before blog generation, bounding model context usage.
const maxTranscriptLen = 10000

// Generator runs one model attempt per artifact kind. Failures are never
// retried here; they become error-artifacts so sibling kinds keep going.
type Generator struct {
	model      llm.Model
	searchTool *llm.Tool
	maxLen     int
}

// NewGenerator wires the generation layer. searchTool may be nil, in which
// case the blog generator instructs the model to rely on the transcript only.
func NewGenerator(model llm.Model, searchTool *llm.Tool) *Generator {
	return &Generator{model: model, searchTool: searchTool, maxLen: maxTranscriptLen}
}

// Blog generates the blog post from the transcript. Long transcripts are
// split into fixed-size chunks, each chunk summarized independently, and
// the blog generated from the joined summaries.
func (g *Generator) Blog(ctx context.Context, transcript string) *Artifact {
	log.Printf("[Content] Generating blog post (transcript length=%d)", len(transcript))

	input := fmt.Sprintf("Generate a blog post based on this transcript: %s", transcript)
	if len(transcript) > g.maxLen {
		log.Printf("[Content] Transcript is long, summarizing chunks")
		summaries := make([]string, 0, len(transcript)/g.maxLen+1)
		for start := 0; start < len(transcript); start += g.maxLen {
			end := start + g.maxLen
			if end > len(transcript) {
				end = len(transcript)
			}
			summary, err := g.model.Complete(ctx, "", chunkSummaryPrompt(transcript[start:end]))
			if err != nil {
				return newErrorArtifact(KindBlog, "", fmt.Errorf("summarize chunk: %w", err))
			}
			summaries = append(summaries, summary)
		}
		input = fmt.Sprintf("Generate a blog post based on these summaries: %s", strings.Join(summaries, "\n"))
	}

	var (
		body string
		err  error
	)
	if g.searchTool != nil {
		body, err = g.model.CompleteWithTools(ctx, blogSystemPrompt(true), input, []llm.Tool{*g.searchTool})
	} else {
		body, err = g.model.Complete(ctx, blogSystemPrompt(false), input)
	}
	if err != nil {
		return newErrorArtifact(KindBlog, "", err)
	}

	return &Artifact{Kind: KindBlog, Format: FormatMarkdown, Content: strings.TrimSpace(body)}
}

// SEO generates the SEO metadata record from the blog body.
func (g *Generator) SEO(ctx context.Context, blog string) *Artifact {
	log.Printf("[Content] Generating SEO elements")
	raw, err := g.model.Complete(ctx, "", seoPrompt(blog))
	if err != nil {
		return newErrorArtifact(KindSEO, "", err)
	}
	seo, err := ParseSEO(raw)
	if err != nil {
		return newErrorArtifact(KindSEO, raw, err)
	}
	rendered, err := RenderSEO(seo)
	if err != nil {
		return newErrorArtifact(KindSEO, raw, err)
	}
	return &Artifact{Kind: KindSEO, Format: FormatJSON, Content: rendered}
}

// FAQ generates question/answer pairs from the transcript.
func (g *Generator) FAQ(ctx context.Context, transcript string) *Artifact {
	log.Printf("[Content] Generating FAQ")
	raw, err := g.model.Complete(ctx, "", faqPrompt(transcript))
	if err != nil {
		return newErrorArtifact(KindFAQ, "", err)
	}
	items, err := ParseFAQ(raw)
	if err != nil {
		return newErrorArtifact(KindFAQ, raw, err)
	}
	return &Artifact{Kind: KindFAQ, Format: FormatMarkdown, Content: RenderFAQ(items)}
}

// Social generates platform posts from the blog body.
func (g *Generator) Social(ctx context.Context, blog string) *Artifact {
	log.Printf("[Content] Generating social media posts")
	raw, err := g.model.Complete(ctx, "", socialPrompt(blog))
	if err != nil {
		return newErrorArtifact(KindSocial, "", err)
	}
	posts, err := ParseSocial(raw)
	if err != nil {
		return newErrorArtifact(KindSocial, raw, err)
	}
	return &Artifact{Kind: KindSocial, Format: FormatMarkdown, Content: RenderSocial(posts)}
}

// Newsletter generates the free-text summary from the blog body.
func (g *Generator) Newsletter(ctx context.Context, blog string) *Artifact {
	log.Printf("[Content] Generating newsletter")
	summary, err := g.model.Complete(ctx, "", newsletterPrompt(blog))
	if err != nil {
		return newErrorArtifact(KindNewsletter, "", err)
	}
	return &Artifact{Kind: KindNewsletter, Format: FormatMarkdown, Content: RenderNewsletter(summary)}
}

// Quotes extracts memorable quotes from the transcript.
func (g *Generator) Quotes(ctx context.Context, transcript string) *Artifact {
	log.Printf("[Content] Extracting quotes")
	raw, err := g.model.Complete(ctx, "", quotesPrompt(transcript))
	if err != nil {
		return newErrorArtifact(KindQuotes, "", err)
	}
	quotes, err := ParseQuotes(raw)
	if err != nil {
		return newErrorArtifact(KindQuotes, raw, err)
	}
	return &Artifact{Kind: KindQuotes, Format: FormatMarkdown, Content: RenderQuotes(quotes)}
}
