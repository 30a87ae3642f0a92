package content

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

func TestNormalize_ValidResponse(t *testing.T) {
	raw := "```json\n" + `{
		"title": "ATS Resume Tips 2026",
		"slug": "ats-resume-tips-2026",
		"meta_description": "Beat the bots.",
		"content": "# ATS Resume Tips\n\nLong body here.",
		"keywords": ["ats", "resume"],
		"faq_schema": {"@type": "FAQPage"}
	}` + "\n```"

	a, fallback := Normalize(raw, "ats resume tips", "resume-tips", testNow)
	if fallback {
		t.Fatal("expected parsed article, got fallback")
	}
	if a.Title != "ATS Resume Tips 2026" {
		t.Fatalf("unexpected title: %q", a.Title)
	}
	if !strings.HasPrefix(a.Slug, "ats-resume-tips-2026-") {
		t.Fatalf("slug missing timestamp suffix: %q", a.Slug)
	}
	if len(a.Keywords) != 2 || a.Keywords[0] != "ats" {
		t.Fatalf("unexpected keywords: %v", a.Keywords)
	}
	if a.Source != "ai" {
		t.Fatalf("unexpected source: %q", a.Source)
	}
	if !a.Published {
		t.Fatal("article must be published")
	}
}

func TestNormalize_EmptyAndGarbageFallBack(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "```json\n{broken\n```"} {
		a, fallback := Normalize(raw, "linkedin headline tips", "linkedin", testNow)
		if !fallback {
			t.Fatalf("input %q: expected fallback", raw)
		}
		if a.Title == "" || a.Slug == "" || a.Content == "" {
			t.Fatalf("input %q: placeholder has empty fields: %+v", raw, a)
		}
		if len(a.Keywords) == 0 {
			t.Fatalf("input %q: placeholder keywords must be non-empty", raw)
		}
		if a.Source != "fallback" {
			t.Fatalf("input %q: unexpected source %q", raw, a.Source)
		}
	}
}

func TestNormalize_FallbackIsDeterministic(t *testing.T) {
	a1 := Fallback("ats resume tips", "resume-tips", testNow)
	a2 := Fallback("ats resume tips", "resume-tips", testNow)
	if a1.Slug != a2.Slug || a1.Title != a2.Title || a1.Content != a2.Content {
		t.Fatal("fallback must be deterministic for the same topic and time")
	}
}

func TestNormalizeKeywords_CommaString(t *testing.T) {
	got := NormalizeKeywords(json.RawMessage(`"a, b , c"`))
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNormalizeKeywords_ListIsIdentity(t *testing.T) {
	got := NormalizeKeywords(json.RawMessage(`["go", "backend"]`))
	if len(got) != 2 || got[0] != "go" || got[1] != "backend" {
		t.Fatalf("list input must pass through, got %v", got)
	}
}

func TestNormalizeKeywords_DropsEmpties(t *testing.T) {
	got := NormalizeKeywords(json.RawMessage(`["go", " ", ""]`))
	if len(got) != 1 || got[0] != "go" {
		t.Fatalf("empties must be dropped, got %v", got)
	}
}

func TestNormalize_FAQStringCoercion(t *testing.T) {
	raw := `{
		"title": "T",
		"content": "body",
		"keywords": "a,b",
		"faq_schema": "{\"@type\": \"FAQPage\"}"
	}`

	a, fallback := Normalize(raw, "t", "c", testNow)
	if fallback {
		t.Fatal("expected parsed article")
	}
	var decoded map[string]any
	if err := json.Unmarshal(a.FAQSchema, &decoded); err != nil {
		t.Fatalf("faq_schema should be unwrapped JSON: %v", err)
	}
	if decoded["@type"] != "FAQPage" {
		t.Fatalf("unexpected faq payload: %v", decoded)
	}
}

func TestNormalize_FAQBadStringKeptRaw(t *testing.T) {
	raw := `{"title": "T", "content": "body", "keywords": ["k"], "faq_schema": "just text"}`

	a, fallback := Normalize(raw, "t", "c", testNow)
	if fallback {
		t.Fatal("expected parsed article")
	}
	var s string
	if err := json.Unmarshal(a.FAQSchema, &s); err != nil || s != "just text" {
		t.Fatalf("unparsable faq string must be kept as-is, got %s", a.FAQSchema)
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
	}
	for in, want := range cases {
		if got := stripFences(in); got != want {
			t.Fatalf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
}
