package handler

import (
	"errors"
	"net/http"

	"github.com/inioluwa/atelier/internal/service"
)

type BlogHandler struct {
	blogService *service.BlogService
	syncService *service.FeedSyncService
}

func NewBlogHandler(blogService *service.BlogService, syncService *service.FeedSyncService) *BlogHandler {
	return &BlogHandler{blogService: blogService, syncService: syncService}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.List()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// Sync triggers a feed synchronization run. The response shape is consumed
// directly by the dashboard: {"success":true,"count":N} on a productive run,
// a message instead of a count when there was nothing to sync, and
// {"error":...} on failure.
func (h *BlogHandler) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.Sync(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoFeedURL) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	if result.Message != "" {
		respondRaw(w, http.StatusOK, map[string]any{"success": true, "message": result.Message})
		return
	}
	respondRaw(w, http.StatusOK, map[string]any{"success": true, "count": result.Synced})
}

func (h *BlogHandler) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug            *string `json:"slug"`
		SEOTitle        *string `json:"seo_title"`
		MetaDescription *string `json:"meta_description"`
		OGImageURL      *string `json:"og_image_url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.blogService.UpdateSEO(r.PathValue("id"), req.Slug, req.SEOTitle, req.MetaDescription, req.OGImageURL); err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.Delete(r.PathValue("id")); err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
