package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"naukriedge/internal/logger"
	"naukriedge/internal/repository"
	"naukriedge/internal/services"
	"naukriedge/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// List godoc
// @Summary      List published articles
// @Description  Returns published blog articles, newest first. Filterable by cluster.
// @Tags         articles
// @Produce      json
// @Param        cluster  query  string  false  "Topical cluster"
// @Param        limit    query  int     false  "Page size (default 20, max 100)"
// @Param        offset   query  int     false  "Offset"
// @Success      200  {array}  models.Article
// @Router       /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 20)
	cluster := r.URL.Query().Get("cluster")

	list, err := h.svc.ListPublished(r.Context(), cluster, limit, offset)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "failed to load articles")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetBySlug godoc
// @Summary      Get one article by slug
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200  {object}  models.Article
// @Failure      404  {string}  string  "not found"
// @Router       /api/articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	a, err := h.svc.GetBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// ListAll godoc
// @Summary      List all articles including drafts (admin)
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Produce      json
// @Param        limit   query  int  false  "Page size (default 50)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  models.Article
// @Router       /api/admin/articles [get]
func (h *ArticleHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 50)

	list, err := h.svc.ListAll(r.Context(), limit, offset)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "failed to load articles")
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Delete godoc
// @Summary      Delete an article (admin)
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Article ID"
// @Success      200  {string}  string  "deleted"
// @Router       /api/admin/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		logger.WithCtx(r.Context()).Error("article delete failed", zap.Int64("id", id), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "failed to delete article")
		return
	}
	helpers.JSON(w, http.StatusOK, "deleted")
}

func pageParams(r *http.Request, defLimit int) (limit, offset int) {
	limit = defLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > 100 {
		limit = 100
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
