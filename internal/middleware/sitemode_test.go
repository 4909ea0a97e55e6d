package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/service"
)

type fakeSettingsRepo struct {
	mode string
}

func (f *fakeSettingsRepo) Get() (*model.Settings, error) {
	return &model.Settings{ID: 1, SiteTitle: "Test", SiteMode: f.mode}, nil
}

func (f *fakeSettingsRepo) Update(settings *model.Settings) error {
	f.mode = settings.SiteMode
	return nil
}

func siteModeHandler(mode string) (http.Handler, *fakeSettingsRepo) {
	repo := &fakeSettingsRepo{mode: mode}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return SiteMode(service.NewSettingsService(repo))(next), repo
}

func TestSiteMode_LivePassesThrough(t *testing.T) {
	h, _ := siteModeHandler(model.SiteModeLive)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/projects", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 in live mode, got %d", rec.Code)
	}
}

func TestSiteMode_MaintenanceBlocksPublic(t *testing.T) {
	h, _ := siteModeHandler(model.SiteModeMaintenance)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/projects", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 in maintenance mode, got %d", rec.Code)
	}
}

func TestSiteMode_AdminStaysReachable(t *testing.T) {
	h, _ := siteModeHandler(model.SiteModeComingSoon)

	for _, path := range []string{"/api/auth/login", "/api/admin/settings", "/health"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200 in coming_soon mode, got %d", path, rec.Code)
		}
	}
}

func TestSiteMode_ChangeTakesEffectImmediately(t *testing.T) {
	h, repo := siteModeHandler(model.SiteModeLive)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/projects", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 before flip, got %d", rec.Code)
	}

	// No restart, no cache: the next request sees the new mode
	repo.mode = model.SiteModeMaintenance
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/projects", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after flip, got %d", rec.Code)
	}
}
