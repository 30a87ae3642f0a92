package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"naukriedge/internal/models"
	"naukriedge/internal/services"
	"naukriedge/internal/utils/helpers"
)

type ToolsHandler struct {
	scores *services.ScoreService
}

func NewToolsHandler(scores *services.ScoreService) *ToolsHandler {
	return &ToolsHandler{scores: scores}
}

// ATSScore godoc
// @Summary      Score a resume against a target role
// @Description  Heuristic keyword-coverage score. Rate-limited per IP.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        input  body  models.ATSScoreRequest  true  "Resume text and target role"
// @Success      200  {object}  models.ATSScoreResponse
// @Failure      400  {string}  string  "empty resume"
// @Failure      429  {string}  string  "rate limited"
// @Router       /api/tools/ats-score [post]
func (h *ToolsHandler) ATSScore(w http.ResponseWriter, r *http.Request) {
	var req models.ATSScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		helpers.Error(w, http.StatusBadRequest, "resumeText is required")
		return
	}

	helpers.JSON(w, http.StatusOK, h.scores.ATSScore(req))
}

// Salary godoc
// @Summary      Estimate a salary band for a role and city
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        input  body  models.SalaryRequest  true  "Role, city, experience"
// @Success      200  {object}  models.SalaryResponse
// @Router       /api/tools/salary [post]
func (h *ToolsHandler) Salary(w http.ResponseWriter, r *http.Request) {
	var req models.SalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		helpers.Error(w, http.StatusBadRequest, "role is required")
		return
	}

	helpers.JSON(w, http.StatusOK, h.scores.SalaryEstimate(req))
}
