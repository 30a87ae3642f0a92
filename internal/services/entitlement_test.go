package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path/filepath"
	"testing"

	"naukriedge/internal/repository"
)

const capturedPayload = `{
	"event": "payment.captured",
	"payload": {
		"payment": {
			"entity": {
				"id": "pay_NxK2m9",
				"amount": 49900,
				"email": "Rahul.Sharma@Example.com",
				"status": "captured"
			}
		}
	}
}`

func newEntitlementService(t *testing.T, secret string) *EntitlementService {
	t.Helper()
	store, err := repository.NewEntitlementFile(filepath.Join(t.TempDir(), "entitlements.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return NewEntitlementService(store, secret)
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	svc := newEntitlementService(t, "whsec_test")
	body := []byte(capturedPayload)

	ok, err := svc.VerifySignature(body, sign("whsec_test", body))
	if err != nil || !ok {
		t.Fatalf("valid signature rejected: ok=%v err=%v", ok, err)
	}

	ok, err = svc.VerifySignature(body, sign("wrong_secret", body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("signature from the wrong secret must be rejected")
	}

	ok, err = svc.VerifySignature(body, "deadbeef")
	if err != nil || ok {
		t.Fatalf("garbage signature must be rejected: ok=%v err=%v", ok, err)
	}
}

func TestVerifySignature_NoSecretConfigured(t *testing.T) {
	svc := newEntitlementService(t, "")
	if _, err := svc.VerifySignature([]byte("{}"), "sig"); !errors.Is(err, ErrNoWebhookSecret) {
		t.Fatalf("expected ErrNoWebhookSecret, got %v", err)
	}
}

func TestHandleEvent_CapturedPaymentActivatesPlan(t *testing.T) {
	svc := newEntitlementService(t, "whsec_test")

	ent, err := svc.HandleEvent(context.Background(), []byte(capturedPayload))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if ent == nil {
		t.Fatal("captured payment must yield an entitlement")
	}
	if ent.Email != "rahul.sharma@example.com" {
		t.Fatalf("email must be lowercased, got %q", ent.Email)
	}
	if ent.Plan != PlanExpert || ent.Status != "active" {
		t.Fatalf("unexpected entitlement: plan=%q status=%q", ent.Plan, ent.Status)
	}
	if ent.PaymentID != "pay_NxK2m9" || ent.AmountPaise != 49900 {
		t.Fatalf("payment details lost: %+v", ent)
	}
}

func TestHandleEvent_ReplayIsIdempotent(t *testing.T) {
	svc := newEntitlementService(t, "whsec_test")

	first, err := svc.HandleEvent(context.Background(), []byte(capturedPayload))
	if err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	second, err := svc.HandleEvent(context.Background(), []byte(capturedPayload))
	if err != nil {
		t.Fatalf("second delivery: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("replay must hit the same row: %d vs %d", first.ID, second.ID)
	}

	got, err := svc.GetByEmail(context.Background(), "rahul.sharma@example.com")
	if err != nil {
		t.Fatalf("lookup after replay: %v", err)
	}
	if got.Plan != PlanExpert || got.Status != "active" {
		t.Fatalf("entitlement degraded by replay: %+v", got)
	}
}

func TestHandleEvent_IgnoresOtherEvents(t *testing.T) {
	svc := newEntitlementService(t, "whsec_test")

	body := []byte(`{"event": "payment.failed", "payload": {"payment": {"entity": {"email": "x@y.com"}}}}`)
	ent, err := svc.HandleEvent(context.Background(), body)
	if err != nil {
		t.Fatalf("ignored event must not error: %v", err)
	}
	if ent != nil {
		t.Fatalf("ignored event must not create an entitlement: %+v", ent)
	}
	if _, err := svc.GetByEmail(context.Background(), "x@y.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("no entitlement may be written for ignored events")
	}
}

func TestHandleEvent_MissingEmail(t *testing.T) {
	svc := newEntitlementService(t, "whsec_test")

	body := []byte(`{"event": "payment.captured", "payload": {"payment": {"entity": {"id": "pay_1", "amount": 100}}}}`)
	if _, err := svc.HandleEvent(context.Background(), body); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}

func TestHandleEvent_BadJSON(t *testing.T) {
	svc := newEntitlementService(t, "whsec_test")
	if _, err := svc.HandleEvent(context.Background(), []byte("{not json")); err == nil {
		t.Fatal("malformed body must error")
	}
}
