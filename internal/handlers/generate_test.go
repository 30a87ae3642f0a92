package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"naukriedge/internal/repository"
	"naukriedge/internal/services"
)

func newGenerateFixture(t *testing.T) *GenerateHandler {
	t.Helper()
	store, err := repository.NewArticleFile(filepath.Join(t.TempDir(), "articles.json"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	// no provider configured: the pipeline publishes placeholder articles
	return NewGenerateHandler(services.NewGeneratorService(store, nil, nil))
}

func TestGenerate_AlwaysAnswers200(t *testing.T) {
	h := newGenerateFixture(t)

	body := bytes.NewBufferString(`{"topic": "resume summary examples"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cron/generate", body)
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("trigger must answer 200, got %d", rec.Code)
	}

	var out struct {
		Data services.GenerateResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Data.Success || out.Data.Slug == "" {
		t.Fatalf("unexpected result: %+v", out.Data)
	}
	if out.Data.Source != "fallback" {
		t.Fatalf("no-provider run must publish a placeholder, got %q", out.Data.Source)
	}
}

func TestGenerate_EmptyBodyPicksATopic(t *testing.T) {
	h := newGenerateFixture(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cron/generate", nil)
	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out struct {
		Data services.GenerateResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Data.Topic == "" {
		t.Fatal("a topic must be picked when none is supplied")
	}
}

func TestBackfill_CountClamped(t *testing.T) {
	h := newGenerateFixture(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cron/backfill", bytes.NewBufferString(`{"count": 0}`))
	h.Backfill(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out struct {
		Data []services.GenerateResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 1 {
		t.Fatalf("count 0 must clamp to one run, got %d", len(out.Data))
	}
}

func TestRegenerate_InvalidID(t *testing.T) {
	h := newGenerateFixture(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/articles/abc/regenerate", nil)
	h.Regenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id must get 400, got %d", rec.Code)
	}
}
