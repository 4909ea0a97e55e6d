package service

import (
	"encoding/xml"
	"log/slog"
	"strings"
	"time"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
)

// publicRoutes defines all static public pages that belong in the sitemap.
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "weekly"},
	{"/work", "0.9", "weekly"},
	{"/about", "0.7", "monthly"},
	{"/manifesto", "0.6", "monthly"},
	{"/contact", "0.5", "monthly"},
	{"/blog", "0.8", "daily"},
}

type SitemapService struct {
	projectRepo repository.ProjectRepository
	postRepo    repository.BlogPostRepository
	baseURL     string
}

func NewSitemapService(projectRepo repository.ProjectRepository, postRepo repository.BlogPostRepository, baseURL string) *SitemapService {
	return &SitemapService{
		projectRepo: projectRepo,
		postRepo:    postRepo,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateSitemap builds the sitemap XML from static routes, project slugs
// and synced blog post links. Content lookups that fail are logged and
// skipped so a flaky table never breaks the whole sitemap.
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  s.staticURLs(),
	}

	projectURLs, err := s.projectURLs()
	if err != nil {
		slog.Warn("failed to get project URLs for sitemap", "error", err)
	} else {
		sitemap.URLs = append(sitemap.URLs, projectURLs...)
	}

	postURLs, err := s.blogURLs()
	if err != nil {
		slog.Warn("failed to get blog URLs for sitemap", "error", err)
	} else {
		sitemap.URLs = append(sitemap.URLs, postURLs...)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return []byte(xml.Header + string(output)), nil
}

func (s *SitemapService) staticURLs() []model.SitemapURL {
	today := time.Now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(publicRoutes))
	for _, route := range publicRoutes {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}
	return urls
}

func (s *SitemapService) projectURLs() ([]model.SitemapURL, error) {
	projects, err := s.projectRepo.Projects("")
	if err != nil {
		return nil, err
	}

	urls := make([]model.SitemapURL, 0, len(projects))
	for _, project := range projects {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/work/" + project.Slug,
			LastMod:    project.CreatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}
	return urls, nil
}

// blogURLs lists synced posts. Post links point at the upstream publication,
// so they are included as-is rather than under baseURL.
func (s *SitemapService) blogURLs() ([]model.SitemapURL, error) {
	posts, err := s.postRepo.Posts()
	if err != nil {
		return nil, err
	}

	urls := make([]model.SitemapURL, 0, len(posts))
	for _, post := range posts {
		lastMod := time.Now().Format("2006-01-02")
		if t, err := time.Parse(time.RFC3339, post.PubDate); err == nil {
			lastMod = t.Format("2006-01-02")
		}
		urls = append(urls, model.SitemapURL{
			Loc:        post.Link,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}
	return urls, nil
}
