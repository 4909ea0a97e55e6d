package handler

import (
	"net/http"

	"github.com/inioluwa/atelier/internal/service"
)

type SocialLinkHandler struct {
	socialService *service.SocialLinkService
}

func NewSocialLinkHandler(socialService *service.SocialLinkService) *SocialLinkHandler {
	return &SocialLinkHandler{socialService: socialService}
}

func (h *SocialLinkHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.socialService.List()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, links)
}

type socialLinkRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (h *SocialLinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req socialLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.socialService.Create(req.Name, req.URL, req.Icon, req.SortOrder)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, link)
}

func (h *SocialLinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req socialLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.socialService.Update(r.PathValue("id"), req.Name, req.URL, req.Icon, req.SortOrder)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, link)
}

func (h *SocialLinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.socialService.Delete(r.PathValue("id")); err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
