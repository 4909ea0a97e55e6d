package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
)

type SocialLinkService struct {
	repo repository.SocialLinkRepository
}

func NewSocialLinkService(repo repository.SocialLinkRepository) *SocialLinkService {
	return &SocialLinkService{repo: repo}
}

func (s *SocialLinkService) List() ([]*model.SocialLink, error) {
	return s.repo.Links()
}

func (s *SocialLinkService) Create(name, linkURL, icon string, sortOrder int) (*model.SocialLink, error) {
	if err := validateSocialLink(name, linkURL, icon); err != nil {
		return nil, err
	}

	link := &model.SocialLink{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		URL:       strings.TrimSpace(linkURL),
		Icon:      icon,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *SocialLinkService) Update(id, name, linkURL, icon string, sortOrder int) (*model.SocialLink, error) {
	if err := validateSocialLink(name, linkURL, icon); err != nil {
		return nil, err
	}

	link, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}
	link.Name = strings.TrimSpace(name)
	link.URL = strings.TrimSpace(linkURL)
	link.Icon = icon
	link.SortOrder = sortOrder

	if err := s.repo.Update(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *SocialLinkService) Delete(id string) error {
	return s.repo.Delete(id)
}

func validateSocialLink(name, linkURL, icon string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	u, err := url.Parse(strings.TrimSpace(linkURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "mailto") {
		return errors.New("url must be http, https or mailto")
	}
	if !model.ValidIcon(icon) {
		return fmt.Errorf("unknown icon %q", icon)
	}
	return nil
}
