package content

import "fmt"

// articlePromptTemplate demands a strict JSON envelope so the normalizer can
// parse the response without guessing. Keys must match llmArticle.
const articlePromptTemplate = `You are a senior careers editor writing for Indian job seekers on a resume-scoring product blog.

Write a complete SEO blog article about: %s
Topical cluster: %s

Requirements:
- 1200 to 1600 words of practical, specific advice for the Indian job market
- Markdown body with one H1, several H2 sections and H3 subsections
- Include concrete examples (roles, companies, salary figures in LPA where relevant)
- End with a FAQ section of 4-5 questions
- Where a related guide would help, insert an internal link placeholder like [INTERNAL: /blog/ats-resume-tips]
- Friendly, direct tone; no fluff, no generic filler

Respond with a single JSON object and nothing else, using exactly these keys:
{
  "title": "article title under 65 characters",
  "slug": "url-safe-slug",
  "meta_description": "SEO meta description under 155 characters",
  "content": "full markdown article body",
  "keywords": ["5-8 target keywords"],
  "faq_schema": {"@context": "https://schema.org", "@type": "FAQPage", "mainEntity": []}
}`

// BuildArticlePrompt constructs the instruction string for one article run.
// No validation here: an empty topic is defaulted at the caller layer.
func BuildArticlePrompt(topic, cluster string) string {
	if cluster == "" {
		cluster = "career-advice"
	}
	return fmt.Sprintf(articlePromptTemplate, topic, cluster)
}
