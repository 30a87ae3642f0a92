package models

import (
	"encoding/json"
	"time"
)

// Article source tags, kept for audit.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
	SourceBackfill = "backfill-api"
)

type Article struct {
	ID              int64           `db:"id"               json:"id"`
	Title           string          `db:"title"            json:"title"`
	Slug            string          `db:"slug"             json:"slug"`
	MetaDescription string          `db:"meta_description" json:"metaDescription"`
	Content         string          `db:"content"          json:"content"`
	Keywords        []string        `db:"-"                json:"keywords"`
	Cluster         string          `db:"cluster"          json:"cluster"`
	FAQSchema       json.RawMessage `db:"faq_schema"       json:"faqSchema,omitempty"`
	Published       bool            `db:"published"        json:"published"`
	Source          string          `db:"source"           json:"source"`
	CreatedAt       time.Time       `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at"       json:"updatedAt"`
}

// swagger:model GenerateArticleRequest
type GenerateArticleRequest struct {
	Topic   string `json:"topic"   example:"resume summary examples for freshers"`
	Cluster string `json:"cluster" example:"resume-tips"`
}

// swagger:model BackfillRequest
type BackfillRequest struct {
	Count   int    `json:"count"   example:"3"`
	Cluster string `json:"cluster" example:"resume-tips"`
}
