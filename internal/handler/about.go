package handler

import (
	"fmt"
	"net/http"

	"github.com/inioluwa/atelier/internal/service"
)

type AboutHandler struct {
	aboutService *service.AboutService
}

func NewAboutHandler(aboutService *service.AboutService) *AboutHandler {
	return &AboutHandler{aboutService: aboutService}
}

func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.aboutService.Get()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, about)
}

// Update handles the admin multipart about form with its four file fields
// (portrait, CV, favicon, og image).
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}
	form := r.MultipartForm

	input := service.AboutInput{
		Headline:        r.FormValue("headline"),
		Paragraph1:      r.FormValue("paragraph1"),
		Paragraph2:      r.FormValue("paragraph2"),
		SubstackURL:     optionalFormValue(form, "substack_url"),
		RSSURL:          optionalFormValue(form, "rss_url"),
		SEOTitle:        optionalFormValue(form, "seo_title"),
		MetaDescription: optionalFormValue(form, "meta_description"),
	}

	about, err := h.aboutService.Update(input, form)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, about)
}
