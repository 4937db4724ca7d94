package content

import "fmt"

const blogSystemTemplate = `You are a helpful assistant that generates blog posts based on provided transcripts. The blog post MUST:
- Be informative, engaging, and well-structured with an introduction, 2-3 subheadings, bullet points where relevant, and a conclusion.
- Be written in a professional yet approachable tone, suitable for software developers and tech enthusiasts.
- Format your answer in clean markdown with no CODE blocks.

Instructions:
1. %s
2. Structure the blog post clearly with subheadings and bullet points for key insights or recommendations.`

const (
	blogSearchInstruction   = "Extract key themes from the transcript and use the search tool to find recent articles, examples, or data that support or expand on those themes. Include at least one hyperlink to a credible source in the blog post."
	blogNoSearchInstruction = "Rely only on the transcript to generate the blog post."
)

func blogSystemPrompt(withSearch bool) string {
	instruction := blogNoSearchInstruction
	if withSearch {
		instruction = blogSearchInstruction
	}
	return fmt.Sprintf(blogSystemTemplate, instruction)
}

func chunkSummaryPrompt(chunk string) string {
	return fmt.Sprintf("Summarize this transcript chunk: %s", chunk)
}

func seoPrompt(blog string) string {
	return fmt.Sprintf(`Given this blog post, return a JSON object with:
- "title": An SEO-friendly title (under 60 characters)
- "meta_description": A meta description (under 160 characters)
- "tags": A list of 5-10 tags
- "keywords": A list of 5-7 keywords
Blog post: %s
do not include any other text or explanation, just return the JSON object`, blog)
}

func faqPrompt(transcript string) string {
	return fmt.Sprintf(`Return a JSON list of 3-5 objects, each with "question" and "answer" keys, based on this transcript: %s
do not include any other text or explanation, just return the JSON object`, transcript)
}

func socialPrompt(blog string) string {
	return fmt.Sprintf(`Return a JSON object with:
- "twitter": A post (<280 characters)
- "linkedin": A post (200-300 words)
- "instagram": A caption (50-100 words)
Based on this blog post: %s
do not include any other text or explanation, just return the JSON object`, blog)
}

func newsletterPrompt(blog string) string {
	return fmt.Sprintf("Return a 100-150 word summary of this blog post for a newsletter: %s", blog)
}

func quotesPrompt(transcript string) string {
	return fmt.Sprintf(`Extract 3-5 memorable quotes from this transcript and return them as a JSON array.
Each quote should have a "quote" field with the actual quote text and a "speaker" field
(use "The Author" if speaker is unknown):
%s`, transcript)
}
