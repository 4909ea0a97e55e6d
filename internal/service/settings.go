package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
)

// SettingsService reads and writes the singleton site settings row. Reads
// always hit the database so a mode change takes effect on the next request.
type SettingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get() (*model.Settings, error) {
	return s.repo.Get()
}

func (s *SettingsService) Update(siteTitle, siteMode string) (*model.Settings, error) {
	siteTitle = strings.TrimSpace(siteTitle)
	if siteTitle == "" {
		return nil, errors.New("site title is required")
	}
	if !model.ValidSiteMode(siteMode) {
		return nil, fmt.Errorf("unknown site mode %q", siteMode)
	}

	settings := &model.Settings{ID: 1, SiteTitle: siteTitle, SiteMode: siteMode}
	if err := s.repo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
