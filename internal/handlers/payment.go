package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"naukriedge/internal/logger"
	"naukriedge/internal/repository"
	"naukriedge/internal/services"
	"naukriedge/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	razorpay     *services.RazorpayService
	entitlements *services.EntitlementService
}

func NewPaymentHandler(rz *services.RazorpayService, ent *services.EntitlementService) *PaymentHandler {
	return &PaymentHandler{razorpay: rz, entitlements: ent}
}

type createPaymentLinkRequest struct {
	Email string `json:"email"`
	Plan  string `json:"plan" example:"expert"`
}

// Plan pricing in paise. Single paid tier for now.
var planAmounts = map[string]int64{
	services.PlanExpert: 49900,
}

// CreatePaymentLink godoc
// @Summary      Create a Razorpay payment link for a plan
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input  body  createPaymentLinkRequest  true  "Buyer email and plan"
// @Success      200  {object}  map[string]string
// @Failure      400  {string}  string  "invalid plan"
// @Failure      500  {string}  string  "payment provider error"
// @Router       /api/pay [post]
func (h *PaymentHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	var req createPaymentLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	plan := strings.ToLower(strings.TrimSpace(req.Plan))
	amount, ok := planAmounts[plan]
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "invalid plan")
		return
	}

	url, err := h.razorpay.CreatePaymentLink(r.Context(), amount, "NaukriEdge "+plan+" plan", req.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to create payment link", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "failed to create payment link")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]string{"url": url, "plan": plan})
}

// GetEntitlement godoc
// @Summary      Look up a subscription entitlement by email (admin)
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Param        email  path  string  true  "Payer email"
// @Success      200  {object}  models.Entitlement
// @Failure      404  {string}  string  "not found"
// @Router       /api/admin/entitlements/{email} [get]
func (h *PaymentHandler) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ent, err := h.entitlements.GetByEmail(r.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Error(w, http.StatusNotFound, "no entitlement for this email")
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	helpers.JSON(w, http.StatusOK, ent)
}
