package handlers

import (
	"errors"
	"io"
	"net/http"

	"naukriedge/internal/logger"
	"naukriedge/internal/services"
	"naukriedge/internal/utils/helpers"

	"go.uber.org/zap"
)

type WebhookHandler struct {
	svc *services.EntitlementService
}

func NewWebhookHandler(svc *services.EntitlementService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// HandleWebhook godoc
// @Summary      Razorpay payment webhook
// @Description  Verifies the HMAC-SHA256 signature over the raw body and activates the expert plan for the payer on payment.captured events.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {string}  string  "ok"
// @Failure      400  {string}  string  "bad signature or payload"
// @Router       /api/payments/webhook [post]
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	ok, err := h.svc.VerifySignature(body, r.Header.Get("X-Razorpay-Signature"))
	if errors.Is(err, services.ErrNoWebhookSecret) {
		log.Error("webhook received but no secret is configured")
		helpers.Error(w, http.StatusInternalServerError, "webhook is not configured")
		return
	}
	if !ok {
		log.Warn("webhook signature mismatch")
		helpers.Error(w, http.StatusBadRequest, "invalid signature")
		return
	}

	ent, err := h.svc.HandleEvent(r.Context(), body)
	if err != nil {
		log.Error("webhook processing failed", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if ent != nil {
		log.Info("subscription activated via webhook",
			zap.String("email", ent.Email),
			zap.String("plan", ent.Plan),
		)
	}

	helpers.JSON(w, http.StatusOK, "ok")
}
