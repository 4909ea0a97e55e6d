package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/repository"
)

const (
	feedUserAgent  = "AtelierFeedSync/1.0 (+https://github.com/inioluwa/atelier)"
	feedAccept     = "application/rss+xml, application/atom+xml, application/xml, text/xml"
	feedBodyLimit  = 10 << 20 // 10MB
	excerptMax     = 200
	previewMax     = 200
	maxFeedRedirects = 5
)

// ErrNoFeedURL is returned when no RSS feed URL has been configured on the
// about page.
var ErrNoFeedURL = errors.New("no RSS feed URL configured")

// SyncResult reports the outcome of a feed synchronization run.
type SyncResult struct {
	Synced  int    `json:"count"`
	Skipped int    `json:"skipped,omitempty"`
	Message string `json:"message,omitempty"`
}

// FeedSyncService pulls the configured RSS/Atom feed and mirrors its entries
// into the blog_posts table, keyed by guid.
type FeedSyncService struct {
	aboutRepo repository.AboutRepository
	postRepo  repository.BlogPostRepository
	client    *http.Client
	sanitizer *bluemonday.Policy
}

func NewFeedSyncService(aboutRepo repository.AboutRepository, postRepo repository.BlogPostRepository, fetchTimeout time.Duration) *FeedSyncService {
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &FeedSyncService{
		aboutRepo: aboutRepo,
		postRepo:  postRepo,
		client: &http.Client{
			Timeout: fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxFeedRedirects {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Sync fetches the configured feed and upserts its entries. The feed URL is
// read fresh from about_content on every call. A feed with no usable items is
// a success ("nothing to sync"), not an error.
func (s *FeedSyncService) Sync(ctx context.Context) (*SyncResult, error) {
	about, err := s.aboutRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load about content: %w", err)
	}
	if about.RSSURL == nil || strings.TrimSpace(*about.RSSURL) == "" {
		return nil, ErrNoFeedURL
	}
	feedURL := strings.TrimSpace(*about.RSSURL)

	body, err := s.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	// Lenient parse: gofeed auto-detects RSS vs Atom and tolerates most
	// real-world feed quirks.
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]*model.BlogPost, 0, len(feed.Items))
	skipped := 0
	for _, item := range feed.Items {
		post, reason := s.normalizeItem(item)
		if post == nil {
			skipped++
			slog.Warn("skipping feed item", "reason", reason, "title", item.Title, "guid", item.GUID)
			continue
		}
		posts = append(posts, post)
	}

	if len(posts) == 0 {
		slog.Info("feed sync: nothing to sync", "url", feedURL, "skipped", skipped)
		return &SyncResult{Skipped: skipped, Message: "nothing to sync"}, nil
	}

	if err := s.postRepo.UpsertBatch(posts); err != nil {
		return nil, fmt.Errorf("failed to store feed items: %w", err)
	}

	slog.Info("feed sync complete", "url", feedURL, "synced", len(posts), "skipped", skipped)
	return &SyncResult{Synced: len(posts), Skipped: skipped}, nil
}

// fetch retrieves the feed body, failing hard on non-2xx responses or payloads
// that cannot be XML.
func (s *FeedSyncService) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}
	req.Header.Set("User-Agent", feedUserAgent)
	req.Header.Set("Accept", feedAccept)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, feedBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, bodyExcerpt(body))
	}

	// A payload that doesn't start with '<' is an HTML error page, JSON, or
	// garbage that gofeed would mangle. Fail with context instead.
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '<' {
		return nil, fmt.Errorf("feed response is not XML: %s", bodyExcerpt(body))
	}

	return body, nil
}

// normalizeItem converts one feed item into a blog post, or returns nil with
// the reason it was skipped.
func (s *FeedSyncService) normalizeItem(item *gofeed.Item) (*model.BlogPost, string) {
	guid := strings.TrimSpace(item.GUID)
	if guid == "" {
		guid = strings.TrimSpace(item.Link)
	}
	if guid == "" {
		return nil, "missing guid"
	}
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return nil, "missing title"
	}
	link := strings.TrimSpace(item.Link)
	if link == "" {
		return nil, "missing link"
	}
	if item.PublishedParsed == nil {
		return nil, "missing or unparseable publish date"
	}

	// Prefer the full content body over the upstream summary so the preview
	// reflects the actual post, then strip all markup.
	raw := item.Content
	if strings.TrimSpace(raw) == "" {
		raw = item.Description
	}

	tags := make(model.StringList, 0, len(item.Categories))
	for _, c := range item.Categories {
		if c = strings.TrimSpace(c); c != "" {
			tags = append(tags, c)
		}
	}

	return &model.BlogPost{
		ID:      uuid.New().String(),
		GUID:    guid,
		Title:   title,
		Link:    link,
		PubDate: item.PublishedParsed.UTC().Format(time.RFC3339),
		Preview: s.makePreview(raw),
		Tags:    tags,
	}, ""
}

// makePreview strips markup from feed content and truncates it to a short
// plain-text snippet, breaking at a word boundary. The limit counts runes,
// not bytes, so scripts without spaces are never cut mid-character.
func (s *FeedSyncService) makePreview(content string) string {
	text := s.sanitizer.Sanitize(content)
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= previewMax {
		return text
	}

	cut := string(runes[:previewMax])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

func bodyExcerpt(body []byte) string {
	excerpt := strings.TrimSpace(string(body))
	if runes := []rune(excerpt); len(runes) > excerptMax {
		excerpt = string(runes[:excerptMax])
	}
	if excerpt == "" {
		excerpt = "(empty body)"
	}
	return excerpt
}
