package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"naukriedge/internal/repository"
	"naukriedge/internal/services"
)

const webhookBody = `{
	"event": "payment.captured",
	"payload": {
		"payment": {
			"entity": {"id": "pay_42", "amount": 49900, "email": "user@example.com", "status": "captured"}
		}
	}
}`

func newWebhookFixture(t *testing.T, secret string) (*WebhookHandler, repository.EntitlementStore) {
	t.Helper()
	store, err := repository.NewEntitlementFile(filepath.Join(t.TempDir(), "entitlements.json"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return NewWebhookHandler(services.NewEntitlementService(store, secret)), store
}

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(h *WebhookHandler, body, signature string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(body))
	if signature != "" {
		req.Header.Set("X-Razorpay-Signature", signature)
	}
	h.HandleWebhook(rec, req)
	return rec
}

func TestHandleWebhook_ValidSignature(t *testing.T) {
	h, store := newWebhookFixture(t, "whsec")

	rec := postWebhook(h, webhookBody, signBody("whsec", webhookBody))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	ent, err := store.GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("entitlement must be written: %v", err)
	}
	if ent.Plan != "expert" || ent.Status != "active" {
		t.Fatalf("unexpected entitlement: %+v", ent)
	}
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	h, store := newWebhookFixture(t, "whsec")

	rec := postWebhook(h, webhookBody, signBody("other_secret", webhookBody))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid signature") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	if _, err := store.GetByEmail(context.Background(), "user@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("rejected webhook must not write an entitlement")
	}
}

func TestHandleWebhook_MissingSignature(t *testing.T) {
	h, _ := newWebhookFixture(t, "whsec")

	rec := postWebhook(h, webhookBody, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleWebhook_SecretNotConfigured(t *testing.T) {
	h, _ := newWebhookFixture(t, "")

	rec := postWebhook(h, webhookBody, "anything")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the secret is missing, got %d", rec.Code)
	}
}
