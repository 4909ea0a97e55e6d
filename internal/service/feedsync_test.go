package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/inioluwa/atelier/internal/model"
)

type fakeAboutRepo struct {
	about *model.AboutContent
	err   error
}

func (f *fakeAboutRepo) Get() (*model.AboutContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.about, nil
}

func (f *fakeAboutRepo) Update(about *model.AboutContent) error {
	f.about = about
	return nil
}

type fakePostRepo struct {
	upserted  [][]*model.BlogPost
	upsertErr error
	posts     []*model.BlogPost
}

func (f *fakePostRepo) UpsertBatch(posts []*model.BlogPost) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, posts)
	return nil
}

func (f *fakePostRepo) Posts() ([]*model.BlogPost, error) { return f.posts, nil }
func (f *fakePostRepo) ByGUID(guid string) (*model.BlogPost, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePostRepo) UpdateSEO(id string, slug, seoTitle, metaDescription, ogImageURL *string) error {
	return nil
}
func (f *fakePostRepo) Delete(id string) error { return nil }
func (f *fakePostRepo) Count() (int, error)    { return len(f.posts), nil }

func aboutWithFeed(url string) *fakeAboutRepo {
	return &fakeAboutRepo{about: &model.AboutContent{ID: 1, RSSURL: &url}}
}

func rssFeed(items ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title><link>https://blog.example.com</link>
%s
</channel></rss>`, strings.Join(items, "\n"))
}

func rssItem(guid, title, link, pubDate, description string) string {
	return fmt.Sprintf(`<item><guid>%s</guid><title>%s</title><link>%s</link><pubDate>%s</pubDate><description>%s</description></item>`,
		guid, title, link, pubDate, description)
}

func TestFeedSync_Success(t *testing.T) {
	feed := rssFeed(
		rssItem("guid-1", "First Post", "https://blog.example.com/1", "Mon, 02 Jan 2006 15:04:05 GMT", "Hello <b>world</b>"),
		rssItem("guid-2", "Second Post", "https://blog.example.com/2", "Tue, 03 Jan 2006 15:04:05 GMT", "More words"),
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Error("expected explicit User-Agent header")
		}
		if got := r.Header.Get("Accept"); !strings.Contains(got, "application/rss+xml") {
			t.Errorf("unexpected Accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	posts := &fakePostRepo{}
	svc := NewFeedSyncService(aboutWithFeed(srv.URL), posts, 5*time.Second)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if result.Synced != 2 {
		t.Errorf("expected 2 synced, got %d", result.Synced)
	}
	if result.Skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", result.Skipped)
	}
	if len(posts.upserted) != 1 {
		t.Fatalf("expected exactly one batched upsert, got %d", len(posts.upserted))
	}

	batch := posts.upserted[0]
	if batch[0].GUID != "guid-1" || batch[0].Title != "First Post" {
		t.Errorf("unexpected first post: %+v", batch[0])
	}
	if batch[0].Preview != "Hello world" {
		t.Errorf("expected markup stripped from preview, got %q", batch[0].Preview)
	}
	if _, perr := time.Parse(time.RFC3339, batch[0].PubDate); perr != nil {
		t.Errorf("pub date not RFC3339: %q", batch[0].PubDate)
	}
	if !strings.HasSuffix(batch[0].PubDate, "Z") {
		t.Errorf("pub date not normalized to UTC: %q", batch[0].PubDate)
	}
}

func TestFeedSync_SkipsInvalidItems(t *testing.T) {
	feed := rssFeed(
		rssItem("guid-1", "Good Post", "https://blog.example.com/1", "Mon, 02 Jan 2006 15:04:05 GMT", "ok"),
		// Missing title
		`<item><guid>guid-2</guid><link>https://blog.example.com/2</link><pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate></item>`,
		// Unparseable date
		rssItem("guid-3", "Bad Date", "https://blog.example.com/3", "not a date", "x"),
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	posts := &fakePostRepo{}
	svc := NewFeedSyncService(aboutWithFeed(srv.URL), posts, 5*time.Second)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if result.Synced != 1 {
		t.Errorf("expected 1 synced, got %d", result.Synced)
	}
	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", result.Skipped)
	}
}

func TestFeedSync_NothingToSync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssFeed()))
	}))
	defer srv.Close()

	posts := &fakePostRepo{}
	svc := NewFeedSyncService(aboutWithFeed(srv.URL), posts, 5*time.Second)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("empty feed should be a success: %v", err)
	}
	if result.Message != "nothing to sync" {
		t.Errorf("expected nothing-to-sync message, got %q", result.Message)
	}
	if len(posts.upserted) != 0 {
		t.Error("expected no upsert for an empty feed")
	}
}

func TestFeedSync_HTTPErrorIncludesExcerpt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied by upstream " + strings.Repeat("x", 500)))
	}))
	defer srv.Close()

	svc := NewFeedSyncService(aboutWithFeed(srv.URL), &fakePostRepo{}, 5*time.Second)

	_, err := svc.Sync(context.Background())
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("expected status code in error, got %q", err)
	}
	if !strings.Contains(err.Error(), "access denied by upstream") {
		t.Errorf("expected body excerpt in error, got %q", err)
	}
	if len(err.Error()) > 300 {
		t.Errorf("excerpt not truncated, error is %d chars", len(err.Error()))
	}
}

func TestFeedSync_RejectsNonXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "this is json, not a feed"}`))
	}))
	defer srv.Close()

	svc := NewFeedSyncService(aboutWithFeed(srv.URL), &fakePostRepo{}, 5*time.Second)

	_, err := svc.Sync(context.Background())
	if err == nil {
		t.Fatal("expected error for non-XML payload")
	}
	if !strings.Contains(err.Error(), "not XML") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFeedSync_NoFeedURL(t *testing.T) {
	repo := &fakeAboutRepo{about: &model.AboutContent{ID: 1}}
	svc := NewFeedSyncService(repo, &fakePostRepo{}, 5*time.Second)

	_, err := svc.Sync(context.Background())
	if !errors.Is(err, ErrNoFeedURL) {
		t.Fatalf("expected ErrNoFeedURL, got %v", err)
	}
}

func TestFeedSync_GUIDFallsBackToLink(t *testing.T) {
	feed := rssFeed(
		`<item><title>No GUID</title><link>https://blog.example.com/no-guid</link><pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate></item>`,
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	posts := &fakePostRepo{}
	svc := NewFeedSyncService(aboutWithFeed(srv.URL), posts, 5*time.Second)

	result, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if result.Synced != 1 {
		t.Fatalf("expected 1 synced, got %d", result.Synced)
	}
	if got := posts.upserted[0][0].GUID; got != "https://blog.example.com/no-guid" {
		t.Errorf("expected link used as guid, got %q", got)
	}
}

func TestMakePreview(t *testing.T) {
	svc := NewFeedSyncService(nil, nil, time.Second)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"strips markup", "<p>Hello <strong>world</strong></p>", "Hello world"},
		{"collapses whitespace", "a\n\n  b\t c", "a b c"},
		{"unescapes entities", "fish &amp; chips", "fish & chips"},
		{"empty content", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.makePreview(tt.content); got != tt.want {
				t.Errorf("makePreview(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}

	t.Run("truncates at word boundary", func(t *testing.T) {
		long := strings.Repeat("word ", 100)
		got := svc.makePreview(long)
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected ellipsis suffix, got %q", got)
		}
		if len(got) > previewMax+3 {
			t.Errorf("preview too long: %d chars", len(got))
		}
		if strings.HasSuffix(strings.TrimSuffix(got, "..."), " ") {
			t.Errorf("preview ends mid-separator: %q", got)
		}
	})

	t.Run("truncates multi-byte text on rune boundaries", func(t *testing.T) {
		long := strings.Repeat("日本語", 100)
		got := svc.makePreview(long)
		if !utf8.ValidString(got) {
			t.Fatalf("preview is not valid UTF-8: %q", got)
		}
		trimmed := strings.TrimSuffix(got, "...")
		if n := utf8.RuneCountInString(trimmed); n != previewMax {
			t.Errorf("expected %d runes before ellipsis, got %d", previewMax, n)
		}
	})
}
