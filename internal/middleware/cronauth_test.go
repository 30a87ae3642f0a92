package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"naukriedge/internal/utils"
)

func cronAuthProbe(t *testing.T, mw func(http.Handler) http.Handler, authHeader string) int {
	t.Helper()
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cron/generate", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestCronOrAdmin_CronSecret(t *testing.T) {
	mw := CronOrAdmin("s3cret", "jwtkey", nil)

	if code := cronAuthProbe(t, mw, "Bearer s3cret"); code != http.StatusOK {
		t.Fatalf("cron secret must be accepted, got %d", code)
	}
	if code := cronAuthProbe(t, mw, "Bearer wrong"); code != http.StatusUnauthorized {
		t.Fatalf("wrong secret must get 401, got %d", code)
	}
	if code := cronAuthProbe(t, mw, ""); code != http.StatusUnauthorized {
		t.Fatalf("missing header must get 401, got %d", code)
	}
}

func TestCronOrAdmin_AdminJWT(t *testing.T) {
	const secret = "jwtkey"
	mw := CronOrAdmin("", secret, []string{"ops@naukriedge.in"})

	token, err := utils.GenerateToken(secret, 1, "admin", "ops@naukriedge.in", time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if code := cronAuthProbe(t, mw, "Bearer "+token); code != http.StatusOK {
		t.Fatalf("allow-listed admin must be accepted, got %d", code)
	}

	outsider, _ := utils.GenerateToken(secret, 2, "admin", "someone@else.com", time.Hour)
	if code := cronAuthProbe(t, mw, "Bearer "+outsider); code != http.StatusUnauthorized {
		t.Fatalf("admin off the allow-list must get 401, got %d", code)
	}

	user, _ := utils.GenerateToken(secret, 3, "user", "ops@naukriedge.in", time.Hour)
	if code := cronAuthProbe(t, mw, "Bearer "+user); code != http.StatusUnauthorized {
		t.Fatalf("non-admin role must get 401, got %d", code)
	}
}

func TestCronOrAdmin_EmptyAllowListAcceptsAnyAdmin(t *testing.T) {
	const secret = "jwtkey"
	mw := CronOrAdmin("", secret, nil)

	token, _ := utils.GenerateToken(secret, 1, "admin", "anyone@example.com", time.Hour)
	if code := cronAuthProbe(t, mw, "Bearer "+token); code != http.StatusOK {
		t.Fatalf("empty allow-list must accept any admin, got %d", code)
	}
}

func TestJWTAuth_RejectsBadTokens(t *testing.T) {
	mw := JWTAuth("rightkey")

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/articles", nil)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token must get 401, got %d", rec.Code)
	}

	forged, _ := utils.GenerateToken("wrongkey", 1, "admin", "a@b.com", time.Hour)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/articles", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("token signed with the wrong key must get 401, got %d", rec.Code)
	}

	valid, _ := utils.GenerateToken("rightkey", 1, "admin", "a@b.com", time.Hour)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/articles", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token must pass, got %d", rec.Code)
	}
}
