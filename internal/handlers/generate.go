package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"naukriedge/internal/logger"
	"naukriedge/internal/models"
	"naukriedge/internal/services"
	"naukriedge/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// maxBackfillCount caps one batch run; larger backfills are just repeat calls.
const maxBackfillCount = 10

type GenerateHandler struct {
	svc *services.GeneratorService
}

func NewGenerateHandler(svc *services.GeneratorService) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// Generate godoc
// @Summary      Run one content-generation pass (cron/admin)
// @Description  Picks a topic (or uses the supplied one), generates an article and publishes it. Pipeline failures come back as success=false with HTTP 200 so schedulers never retry-storm the provider.
// @Tags         cron
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        input  body  models.GenerateArticleRequest  false  "Optional topic override"
// @Success      200  {object}  services.GenerateResult
// @Failure      401  {string}  string  "unauthorized"
// @Router       /api/cron/generate [post]
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateArticleRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // body is optional
	}

	res := h.svc.Generate(r.Context(), services.GenerateOptions{
		Topic:   req.Topic,
		Cluster: req.Cluster,
	})

	logger.WithCtx(r.Context()).Info("generation run finished",
		zap.Bool("success", res.Success),
		zap.Bool("skipped", res.Skipped),
		zap.String("topic", res.Topic),
		zap.String("slug", res.Slug),
	)

	helpers.JSON(w, http.StatusOK, res)
}

// Backfill godoc
// @Summary      Run a batch of generation passes (cron/admin)
// @Description  Generates up to 10 articles with a fixed pause between provider calls.
// @Tags         cron
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        input  body  models.BackfillRequest  true  "Batch size and optional cluster"
// @Success      200  {array}  services.GenerateResult
// @Failure      401  {string}  string  "unauthorized"
// @Router       /api/cron/backfill [post]
func (h *GenerateHandler) Backfill(w http.ResponseWriter, r *http.Request) {
	var req models.BackfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > maxBackfillCount {
		count = maxBackfillCount
	}

	results := h.svc.Backfill(r.Context(), count, req.Cluster)
	helpers.JSON(w, http.StatusOK, results)
}

// Regenerate godoc
// @Summary      Regenerate an existing article (admin)
// @Description  Reruns the pipeline for a stored article; all fields except id and slug are overwritten.
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id  path  int  true  "Article ID"
// @Success      200  {object}  services.GenerateResult
// @Router       /api/admin/articles/{id}/regenerate [post]
func (h *GenerateHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	res := h.svc.Regenerate(r.Context(), id)
	helpers.JSON(w, http.StatusOK, res)
}
