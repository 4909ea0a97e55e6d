package service

import (
	"strings"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
	"github.com/inioluwa/atelier/internal/validation"
)

// BlogService exposes the synced post mirror. Posts are created exclusively
// by the feed sync pipeline; the admin can curate their SEO overrides or
// remove entries.
type BlogService struct {
	repo repository.BlogPostRepository
}

func NewBlogService(repo repository.BlogPostRepository) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) List() ([]*model.BlogPost, error) {
	return s.repo.Posts()
}

// UpdateSEO sets the admin-curated SEO fields of a post. These survive later
// syncs untouched.
func (s *BlogService) UpdateSEO(id string, slug, seoTitle, metaDescription, ogImageURL *string) error {
	if slug != nil && strings.TrimSpace(*slug) != "" {
		normalized := validation.Slugify(*slug)
		if err := validation.ValidateSlug(normalized); err != nil {
			return err
		}
		slug = &normalized
	} else {
		slug = nil
	}

	return s.repo.UpdateSEO(id,
		slug,
		normalizeOptional(seoTitle),
		normalizeOptional(metaDescription),
		normalizeOptional(ogImageURL),
	)
}

func (s *BlogService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Counts for the admin dashboard.

type DashboardCounts struct {
	Projects       int `json:"projects"`
	Posts          int `json:"posts"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
}

type DashboardService struct {
	projectRepo repository.ProjectRepository
	postRepo    repository.BlogPostRepository
	messageRepo repository.MessageRepository
}

func NewDashboardService(projectRepo repository.ProjectRepository, postRepo repository.BlogPostRepository, messageRepo repository.MessageRepository) *DashboardService {
	return &DashboardService{projectRepo: projectRepo, postRepo: postRepo, messageRepo: messageRepo}
}

func (s *DashboardService) Counts() (*DashboardCounts, error) {
	projects, err := s.projectRepo.Count()
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.Count()
	if err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.Count()
	if err != nil {
		return nil, err
	}
	unread, err := s.messageRepo.CountByStatus(model.MessageStatusUnread)
	if err != nil {
		return nil, err
	}
	return &DashboardCounts{
		Projects:       projects,
		Posts:          posts,
		Messages:       messages,
		UnreadMessages: unread,
	}, nil
}
