package service

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
)

// AboutInput carries the scalar fields of an about page update. The portrait,
// CV, favicon and og image travel as file fields in the multipart form.
type AboutInput struct {
	Headline        string
	Paragraph1      string
	Paragraph2      string
	SubstackURL     *string
	RSSURL          *string
	SEOTitle        *string
	MetaDescription *string
}

type AboutService struct {
	repo    repository.AboutRepository
	uploads *UploadService
}

func NewAboutService(repo repository.AboutRepository, uploads *UploadService) *AboutService {
	return &AboutService{repo: repo, uploads: uploads}
}

func (s *AboutService) Get() (*model.AboutContent, error) {
	return s.repo.Get()
}

// Update resolves every file field, then writes the singleton row. A failed
// upload aborts before the database is touched.
func (s *AboutService) Update(input AboutInput, form *multipart.Form) (*model.AboutContent, error) {
	if strings.TrimSpace(input.Headline) == "" {
		return nil, errors.New("headline is required")
	}

	imageURL, err := s.uploads.Resolve(form, "image", UploadKindImage)
	if err != nil {
		return nil, err
	}
	cvURL, err := s.uploads.Resolve(form, "cv", UploadKindDocument)
	if err != nil {
		return nil, err
	}
	faviconURL, err := s.uploads.Resolve(form, "favicon", UploadKindImage)
	if err != nil {
		return nil, err
	}
	ogImageURL, err := s.uploads.Resolve(form, "og_image", UploadKindImage)
	if err != nil {
		return nil, err
	}

	about := &model.AboutContent{
		ID:              1,
		Headline:        strings.TrimSpace(input.Headline),
		Paragraph1:      strings.TrimSpace(input.Paragraph1),
		Paragraph2:      strings.TrimSpace(input.Paragraph2),
		ImageURL:        deref(imageURL),
		CVURL:           deref(cvURL),
		FaviconURL:      faviconURL,
		SubstackURL:     normalizeOptional(input.SubstackURL),
		RSSURL:          normalizeOptional(input.RSSURL),
		SEOTitle:        normalizeOptional(input.SEOTitle),
		MetaDescription: normalizeOptional(input.MetaDescription),
		OGImageURL:      ogImageURL,
	}

	if err := s.repo.Update(about); err != nil {
		return nil, err
	}
	return about, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeOptional trims an optional field and collapses blank values to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
