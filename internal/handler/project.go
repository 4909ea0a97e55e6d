package handler

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/service"
)

const maxUploadMemory = 32 << 20 // 32MB

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List serves projects, optionally filtered by ?category=.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.URL.Query().Get("category"))
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// Featured serves the homepage selection.
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.Featured()
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// BySlug serves a single project by its public slug.
func (h *ProjectHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.BySlug(r.PathValue("slug"))
	if err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Create handles the admin multipart project form.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, form, err := parseProjectForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectService.Create(input, form)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, form, err := parseProjectForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectService.Update(r.PathValue("id"), input, form)
	if err != nil {
		handleError(w, err, http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.PathValue("id")); err != nil {
		handleError(w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// parseProjectForm extracts scalar fields from the multipart form; file
// fields stay in the form for the upload resolver.
func parseProjectForm(r *http.Request) (service.ProjectInput, *multipart.Form, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return service.ProjectInput{}, nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	form := r.MultipartForm

	input := service.ProjectInput{
		Title:           r.FormValue("title"),
		Slug:            r.FormValue("slug"),
		Category:        r.FormValue("category"),
		Description:     r.FormValue("description"),
		IsFeatured:      parseBool(r.FormValue("is_featured")),
		SEOTitle:        optionalFormValue(form, "seo_title"),
		MetaDescription: optionalFormValue(form, "meta_description"),
	}

	if v := strings.TrimSpace(r.FormValue("year")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return input, nil, fmt.Errorf("invalid year %q", v)
		}
		input.Year = &year
	}

	if v := r.FormValue("details"); v != "" {
		if err := json.Unmarshal([]byte(v), &input.Details); err != nil {
			return input, nil, fmt.Errorf("invalid details JSON: %w", err)
		}
	}
	if v := r.FormValue("tags"); v != "" {
		if err := json.Unmarshal([]byte(v), &input.Tags); err != nil {
			return input, nil, fmt.Errorf("invalid tags JSON: %w", err)
		}
	}
	if input.Tags == nil {
		input.Tags = model.StringList{}
	}

	return input, form, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// optionalFormValue returns a pointer to a form value, nil when absent or blank.
func optionalFormValue(form *multipart.Form, field string) *string {
	if form == nil {
		return nil
	}
	if vals := form.Value[field]; len(vals) > 0 {
		if v := strings.TrimSpace(vals[0]); v != "" {
			return &v
		}
	}
	return nil
}
