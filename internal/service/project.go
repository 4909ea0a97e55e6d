package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inioluwa/atelier/internal/markdown"
	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
	"github.com/inioluwa/atelier/internal/validation"
)

// ProjectInput carries the scalar fields of a project create/update. File
// fields (cover image, og image, detail block images) travel separately in
// the multipart form and are resolved by UploadService.
type ProjectInput struct {
	Title           string
	Slug            string
	Category        string
	Description     string
	Details         model.DetailBlocks
	Tags            model.StringList
	Year            *int
	IsFeatured      bool
	SEOTitle        *string
	MetaDescription *string
}

type ProjectService struct {
	repo    repository.ProjectRepository
	uploads *UploadService
	md      *markdown.Renderer
}

func NewProjectService(repo repository.ProjectRepository, uploads *UploadService, md *markdown.Renderer) *ProjectService {
	return &ProjectService{repo: repo, uploads: uploads, md: md}
}

// Create validates and persists a new project. All file fields are uploaded
// before the row is written.
func (s *ProjectService) Create(input ProjectInput, form *multipart.Form) (*model.Project, error) {
	project, err := s.build(input, form)
	if err != nil {
		return nil, err
	}
	project.ID = uuid.New().String()
	project.CreatedAt = time.Now()

	if err := s.repo.Create(project); err != nil {
		return nil, err
	}

	slog.Info("project created", "id", project.ID, "slug", project.Slug)
	return project, nil
}

// Update replaces a project's content. File fields follow the
// fetch-or-keep-or-clear protocol, so an untouched image survives the edit.
func (s *ProjectService) Update(id string, input ProjectInput, form *multipart.Form) (*model.Project, error) {
	existing, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	project, err := s.build(input, form)
	if err != nil {
		return nil, err
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}

	slog.Info("project updated", "id", project.ID, "slug", project.Slug)
	return project, nil
}

func (s *ProjectService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	slog.Info("project deleted", "id", id)
	return nil
}

// List returns projects, optionally filtered by category. "All" or the empty
// string means no filter.
func (s *ProjectService) List(category string) ([]*model.Project, error) {
	if category != "" && category != "All" && !slices.Contains(model.ProjectCategories, category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	projects, err := s.repo.Projects(category)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		s.renderDetails(p)
	}
	return projects, nil
}

func (s *ProjectService) Featured() ([]*model.Project, error) {
	projects, err := s.repo.Featured()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		s.renderDetails(p)
	}
	return projects, nil
}

func (s *ProjectService) BySlug(slug string) (*model.Project, error) {
	project, err := s.repo.BySlug(slug)
	if err != nil {
		return nil, err
	}
	s.renderDetails(project)
	return project, nil
}

func (s *ProjectService) ByID(id string) (*model.Project, error) {
	return s.repo.ByID(id)
}

// build validates input and resolves every file field into a ready-to-persist
// project. Uploads happen here, before any caller touches the database.
func (s *ProjectService) build(input ProjectInput, form *multipart.Form) (*model.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.New("description is required")
	}
	if !slices.Contains(model.ProjectCategories, input.Category) {
		return nil, fmt.Errorf("unknown category %q", input.Category)
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = validation.Slugify(title)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, err
	}

	imageURL, err := s.uploads.Resolve(form, "image", UploadKindImage)
	if err != nil {
		return nil, err
	}
	ogImageURL, err := s.uploads.Resolve(form, "og_image", UploadKindImage)
	if err != nil {
		return nil, err
	}
	details, err := s.uploads.ResolveDetailBlocks(form, input.Details)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = model.StringList{}
	}

	return &model.Project{
		Title:           title,
		Slug:            slug,
		Category:        input.Category,
		Description:     strings.TrimSpace(input.Description),
		ImageURL:        imageURL,
		Details:         details,
		Tags:            tags,
		Year:            input.Year,
		IsFeatured:      input.IsFeatured,
		SEOTitle:        input.SEOTitle,
		MetaDescription: input.MetaDescription,
		OGImageURL:      ogImageURL,
	}, nil
}

// renderDetails fills the derived HTML of text and quote blocks for public
// payloads. Image block content is already a URL and passes through.
func (s *ProjectService) renderDetails(p *model.Project) {
	for i, block := range p.Details {
		if block.Type == model.DetailBlockImage || block.Content == "" {
			continue
		}
		html, err := s.md.Render(block.Content)
		if err != nil {
			slog.Warn("failed to render detail block", "project", p.ID, "block", i, "error", err)
			continue
		}
		p.Details[i].HTML = strings.TrimSpace(html)
	}
}
