package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inioluwa/atelier/internal/markdown"
	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
)

type ManifestoService struct {
	repo repository.ManifestoRepository
	md   *markdown.Renderer
}

func NewManifestoService(repo repository.ManifestoRepository, md *markdown.Renderer) *ManifestoService {
	return &ManifestoService{repo: repo, md: md}
}

// Manifesto bundles the core belief with its ordered principles.
type Manifesto struct {
	CoreBelief     string                      `json:"core_belief"`
	CoreBeliefHTML string                      `json:"core_belief_html,omitempty"`
	Principles     []*model.ManifestoPrinciple `json:"principles"`
}

func (s *ManifestoService) Get() (*Manifesto, error) {
	content, err := s.repo.Content()
	if err != nil {
		return nil, err
	}
	principles, err := s.repo.Principles()
	if err != nil {
		return nil, err
	}

	m := &Manifesto{CoreBelief: content.CoreBelief, Principles: principles}
	if content.CoreBelief != "" {
		if html, err := s.md.Render(content.CoreBelief); err == nil {
			m.CoreBeliefHTML = strings.TrimSpace(html)
		}
	}
	return m, nil
}

func (s *ManifestoService) UpdateCoreBelief(coreBelief string) error {
	coreBelief = strings.TrimSpace(coreBelief)
	if coreBelief == "" {
		return errors.New("core belief is required")
	}
	return s.repo.UpdateContent(coreBelief)
}

func (s *ManifestoService) CreatePrinciple(title, description string) (*model.ManifestoPrinciple, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if description == "" {
		return nil, errors.New("description is required")
	}

	principle := &model.ManifestoPrinciple{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreatePrinciple(principle); err != nil {
		return nil, err
	}
	return principle, nil
}

func (s *ManifestoService) UpdatePrinciple(id, title, description string) (*model.ManifestoPrinciple, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if description == "" {
		return nil, errors.New("description is required")
	}

	principle, err := s.repo.PrincipleByID(id)
	if err != nil {
		return nil, err
	}
	principle.Title = title
	principle.Description = description

	if err := s.repo.UpdatePrinciple(principle); err != nil {
		return nil, err
	}
	return principle, nil
}

func (s *ManifestoService) DeletePrinciple(id string) error {
	return s.repo.DeletePrinciple(id)
}
