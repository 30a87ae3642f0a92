package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"naukriedge/internal/logger"
	"naukriedge/internal/models"
	"naukriedge/internal/repository"

	"go.uber.org/zap"
)

// EventPaymentCaptured is the only Razorpay event this service acts on.
const EventPaymentCaptured = "payment.captured"

// PlanExpert is the tier activated by a captured payment.
const PlanExpert = "expert"

var (
	ErrNoWebhookSecret = errors.New("webhook secret is not configured")
	ErrMissingEmail    = errors.New("webhook payload has no payer email")
)

type EntitlementService struct {
	store         repository.EntitlementStore
	webhookSecret string
}

func NewEntitlementService(store repository.EntitlementStore, webhookSecret string) *EntitlementService {
	return &EntitlementService{store: store, webhookSecret: webhookSecret}
}

// razorpayWebhook mirrors the fields we need from the Razorpay envelope.
type razorpayWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID     string `json:"id"`
				Amount int64  `json:"amount"`
				Email  string `json:"email"`
				Status string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// VerifySignature checks the hex HMAC-SHA256 over the raw request body.
func (s *EntitlementService) VerifySignature(body []byte, signature string) (bool, error) {
	if s.webhookSecret == "" {
		return false, ErrNoWebhookSecret
	}
	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// HandleEvent processes a verified webhook body. Returns the upserted
// entitlement for captured payments, or (nil, nil) for events we ignore.
// The upsert is keyed by email, so replaying a payload is idempotent.
func (s *EntitlementService) HandleEvent(ctx context.Context, body []byte) (*models.Entitlement, error) {
	log := logger.WithCtx(ctx)

	var hook razorpayWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return nil, err
	}

	if hook.Event != EventPaymentCaptured {
		log.Info("ignoring webhook event", zap.String("event", hook.Event))
		return nil, nil
	}

	entity := hook.Payload.Payment.Entity
	email := strings.ToLower(strings.TrimSpace(entity.Email))
	if email == "" {
		return nil, ErrMissingEmail
	}

	ent, err := s.store.UpsertByEmail(ctx, &models.Entitlement{
		Email:       email,
		Plan:        PlanExpert,
		Status:      "active",
		PaymentID:   entity.ID,
		AmountPaise: entity.Amount,
	})
	if err != nil {
		log.Error("failed to upsert entitlement", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("entitlement activated",
		zap.String("email", ent.Email),
		zap.String("plan", ent.Plan),
		zap.String("payment_id", ent.PaymentID),
	)
	return ent, nil
}

func (s *EntitlementService) GetByEmail(ctx context.Context, email string) (*models.Entitlement, error) {
	return s.store.GetByEmail(ctx, email)
}
