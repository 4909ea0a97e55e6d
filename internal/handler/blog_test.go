package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/service"
)

type stubAboutRepo struct{ rssURL string }

func (s *stubAboutRepo) Get() (*model.AboutContent, error) {
	about := &model.AboutContent{ID: 1}
	if s.rssURL != "" {
		about.RSSURL = &s.rssURL
	}
	return about, nil
}

func (s *stubAboutRepo) Update(about *model.AboutContent) error { return nil }

type stubPostRepo struct{ posts []*model.BlogPost }

func (s *stubPostRepo) UpsertBatch(posts []*model.BlogPost) error {
	s.posts = append(s.posts, posts...)
	return nil
}
func (s *stubPostRepo) Posts() ([]*model.BlogPost, error)          { return s.posts, nil }
func (s *stubPostRepo) ByGUID(guid string) (*model.BlogPost, error) { return nil, nil }
func (s *stubPostRepo) UpdateSEO(id string, slug, seoTitle, metaDescription, ogImageURL *string) error {
	return nil
}
func (s *stubPostRepo) Delete(id string) error { return nil }
func (s *stubPostRepo) Count() (int, error)    { return len(s.posts), nil }

func syncHandlerWithFeed(t *testing.T, feedBody string, status int) *BlogHandler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(feedBody))
	}))
	t.Cleanup(srv.Close)

	posts := &stubPostRepo{}
	sync := service.NewFeedSyncService(&stubAboutRepo{rssURL: srv.URL}, posts, 5*time.Second)
	return NewBlogHandler(service.NewBlogService(posts), sync)
}

const sampleFeed = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>T</title>
<item><guid>g1</guid><title>One</title><link>https://b.example.com/1</link><pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate></item>
</channel></rss>`

func TestBlogSync_SuccessShape(t *testing.T) {
	h := syncHandlerWithFeed(t, sampleFeed, http.StatusOK)

	rec := httptest.NewRecorder()
	h.Sync(rec, httptest.NewRequest("POST", "/api/admin/posts/sync", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !body.Success || body.Count != 1 {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogSync_NothingToSyncShape(t *testing.T) {
	empty := `<?xml version="1.0"?><rss version="2.0"><channel><title>T</title></channel></rss>`
	h := syncHandlerWithFeed(t, empty, http.StatusOK)

	rec := httptest.NewRecorder()
	h.Sync(rec, httptest.NewRequest("POST", "/api/admin/posts/sync", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("empty feed should be 200, got %d", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !body.Success || body.Message != "nothing to sync" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBlogSync_UpstreamFailureShape(t *testing.T) {
	h := syncHandlerWithFeed(t, "internal error page", http.StatusInternalServerError)

	rec := httptest.NewRecorder()
	h.Sync(rec, httptest.NewRequest("POST", "/api/admin/posts/sync", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for upstream failure, got %d", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if body.Error == "" {
		t.Error("expected error message in body")
	}
}

func TestBlogSync_NoFeedConfigured(t *testing.T) {
	posts := &stubPostRepo{}
	sync := service.NewFeedSyncService(&stubAboutRepo{}, posts, 5*time.Second)
	h := NewBlogHandler(service.NewBlogService(posts), sync)

	rec := httptest.NewRecorder()
	h.Sync(rec, httptest.NewRequest("POST", "/api/admin/posts/sync", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when no feed URL configured, got %d", rec.Code)
	}
}
