package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"naukriedge/internal/models"
)

// llmArticle is the envelope the prompt asks the model to return.
type llmArticle struct {
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	MetaDescription string          `json:"meta_description"`
	Content         string          `json:"content"`
	Keywords        json.RawMessage `json:"keywords"`
	FAQSchema       json.RawMessage `json:"faq_schema"`
}

// Normalize turns raw provider output into a persistable Article draft.
// It never fails: any unparsable input maps to the deterministic placeholder,
// and the second return value reports which branch was taken (false means
// the response was parsed, true means the placeholder fallback was used).
func Normalize(raw, topic, cluster string, now time.Time) (models.Article, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Fallback(topic, cluster, now), true
	}

	var parsed llmArticle
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return Fallback(topic, cluster, now), true
	}
	if strings.TrimSpace(parsed.Content) == "" {
		return Fallback(topic, cluster, now), true
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		title = titleFromTopic(topic)
	}

	base := Slugify(parsed.Slug)
	if base == "" {
		base = Slugify(title)
	}

	keywords := NormalizeKeywords(parsed.Keywords)
	if len(keywords) == 0 {
		keywords = []string{strings.ToLower(strings.TrimSpace(topic))}
	}

	return models.Article{
		Title:           title,
		Slug:            SlugWithSuffix(base, now),
		MetaDescription: strings.TrimSpace(parsed.MetaDescription),
		Content:         parsed.Content,
		Keywords:        keywords,
		Cluster:         cluster,
		FAQSchema:       coerceFAQ(parsed.FAQSchema),
		Published:       true,
		Source:          models.SourceAI,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, false
}

// Fallback builds the deterministic placeholder article for a topic.
// Published on purpose: a broken provider response must not block the
// pipeline, and a thin article is replaceable via the admin regenerate flow.
func Fallback(topic, cluster string, now time.Time) models.Article {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	title := titleFromTopic(topic)

	content := fmt.Sprintf(`# %s

Indian recruiters spend less than 30 seconds on a resume, and most large
companies run every application through an ATS before a human sees it. This
guide covers the essentials of %s so your profile makes it past both filters.

## Why this matters

Over 75%% of resumes submitted on Naukri and LinkedIn are rejected by
applicant tracking systems before reaching a recruiter. Getting the basics
right is the highest-leverage fix available.

## Key takeaways

- Match the exact keywords from the job description
- Keep formatting simple: no tables, graphics or multi-column layouts
- Quantify achievements with numbers recruiters can verify
- Tailor your resume for every application instead of mass-applying

## Next steps

Run your resume through our free ATS score checker to see how it performs
against the roles you are targeting. [INTERNAL: /tools/ats-score]
`, title, topic)

	return models.Article{
		Title:           title,
		Slug:            SlugWithSuffix(Slugify(topic), now),
		MetaDescription: fmt.Sprintf("A practical guide to %s for Indian job seekers.", topic),
		Content:         content,
		Keywords:        []string{strings.ToLower(topic)},
		Cluster:         cluster,
		Published:       true,
		Source:          models.SourceFallback,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NormalizeKeywords accepts either a JSON array of strings or a single
// comma-separated string and always yields a trimmed, non-empty-item list.
func NormalizeKeywords(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		var out []string
		for _, k := range list {
			if k = strings.TrimSpace(k); k != "" {
				out = append(out, k)
			}
		}
		return out
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return SplitKeywords(s)
	}

	return nil
}

// SplitKeywords splits a comma-separated string, trimming and dropping empties.
func SplitKeywords(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// coerceFAQ keeps structured payloads as-is. A string payload is unwrapped
// when its contents are themselves valid JSON; otherwise the raw string is
// kept, best-effort.
func coerceFAQ(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return raw // already structured
	}
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	return raw
}

// stripFences removes a leading/trailing markdown code fence if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func titleFromTopic(topic string) string {
	words := strings.Fields(topic)
	for i, w := range words {
		if len(w) > 3 || i == 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
