package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/inioluwa/atelier/internal/model"
)

func TestAboutRepository_SingletonUpdate(t *testing.T) {
	repo := NewAboutRepository(setupTestDB(t))

	// Seed row exists from migration
	about, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if about.ID != 1 {
		t.Fatalf("expected singleton id 1, got %d", about.ID)
	}

	rss := "https://writer.substack.com/feed"
	about.Headline = "Builder of quiet software"
	about.RSSURL = &rss
	if err := repo.Update(about); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Headline != "Builder of quiet software" {
		t.Errorf("headline not persisted: %q", got.Headline)
	}
	if got.RSSURL == nil || *got.RSSURL != rss {
		t.Errorf("rss url not persisted: %v", got.RSSURL)
	}
}

func TestSettingsRepository_DefaultsAndUpdate(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))

	settings, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteMode != model.SiteModeLive {
		t.Errorf("expected live default, got %q", settings.SiteMode)
	}

	if err := repo.Update(&model.Settings{ID: 1, SiteTitle: "Studio", SiteMode: model.SiteModeMaintenance}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.SiteTitle != "Studio" || got.SiteMode != model.SiteModeMaintenance {
		t.Errorf("settings not persisted: %+v", got)
	}
}

func TestManifestoRepository_ContentAndPrinciples(t *testing.T) {
	repo := NewManifestoRepository(setupTestDB(t))

	if err := repo.UpdateContent("Make it honest."); err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	content, err := repo.Content()
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}
	if content.CoreBelief != "Make it honest." {
		t.Errorf("core belief not persisted: %q", content.CoreBelief)
	}

	principle := &model.ManifestoPrinciple{
		ID:          uuid.New().String(),
		Title:       "Less",
		Description: "is more",
		CreatedAt:   time.Now(),
	}
	if err := repo.CreatePrinciple(principle); err != nil {
		t.Fatalf("CreatePrinciple failed: %v", err)
	}

	principle.Description = "but better"
	if err := repo.UpdatePrinciple(principle); err != nil {
		t.Fatalf("UpdatePrinciple failed: %v", err)
	}

	principles, err := repo.Principles()
	if err != nil {
		t.Fatalf("Principles failed: %v", err)
	}
	if len(principles) != 1 || principles[0].Description != "but better" {
		t.Errorf("unexpected principles: %+v", principles)
	}

	if err := repo.DeletePrinciple(principle.ID); err != nil {
		t.Fatalf("DeletePrinciple failed: %v", err)
	}
	if _, err := repo.PrincipleByID(principle.ID); !errors.Is(err, ErrPrincipleNotFound) {
		t.Errorf("expected ErrPrincipleNotFound, got %v", err)
	}
}

func TestSocialLinkRepository_Ordering(t *testing.T) {
	repo := NewSocialLinkRepository(setupTestDB(t))

	links := []*model.SocialLink{
		{ID: uuid.New().String(), Name: "Substack", URL: "https://x.substack.com", Icon: "bookOpen", SortOrder: 2, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "LinkedIn", URL: "https://linkedin.com/in/x", Icon: "linkedin", SortOrder: 0, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Twitter", URL: "https://twitter.com/x", Icon: "twitter", SortOrder: 1, CreatedAt: time.Now()},
	}
	for _, link := range links {
		if err := repo.Create(link); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := repo.Links()
	if err != nil {
		t.Fatalf("Links failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 links, got %d", len(got))
	}
	order := []string{"LinkedIn", "Twitter", "Substack"}
	for i, want := range order {
		if got[i].Name != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestMessageRepository_StatusLifecycle(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))

	msg := &model.ContactMessage{
		ID:        uuid.New().String(),
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Hello there",
		Status:    model.MessageStatusUnread,
		CreatedAt: time.Now(),
	}
	if err := repo.Create(msg); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	unread, err := repo.CountByStatus(model.MessageStatusUnread)
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("expected 1 unread, got %d", unread)
	}

	if err := repo.UpdateStatus(msg.ID, model.MessageStatusArchived); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	got, err := repo.ByID(msg.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.Status != model.MessageStatusArchived {
		t.Errorf("status not updated: %q", got.Status)
	}

	if err := repo.UpdateStatus(uuid.New().String(), model.MessageStatusRead); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound for unknown id, got %v", err)
	}
}

func TestUserRepository_Passwords(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        "admin@example.com",
		PasswordHash: "hash-one",
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.ByEmail("admin@example.com")
	if err != nil {
		t.Fatalf("ByEmail failed: %v", err)
	}
	if got.PasswordHash != "hash-one" {
		t.Errorf("unexpected hash %q", got.PasswordHash)
	}

	if err := repo.UpdatePassword(user.ID, "hash-two"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	got, err = repo.ByID(user.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.PasswordHash != "hash-two" {
		t.Errorf("password not rotated: %q", got.PasswordHash)
	}

	if _, err := repo.ByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
