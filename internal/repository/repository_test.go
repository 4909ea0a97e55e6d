package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/db"
	"github.com/inioluwa/atelier/internal/model"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	// A :memory: database exists per connection; pin the pool to one so the
	// migrated schema is visible to every query.
	database.SetMaxOpenConns(1)

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return database
}

func testProject(title, slug string) *model.Project {
	return &model.Project{
		ID:          uuid.New().String(),
		Title:       title,
		Slug:        slug,
		Category:    model.ProjectCategoryDesign,
		Description: "A test project",
		Details:     model.DetailBlocks{{Type: model.DetailBlockText, Content: "About it"}},
		Tags:        model.StringList{"go", "design"},
		CreatedAt:   time.Now(),
	}
}

func TestProjectRepository_CreateAndBySlug(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	project := testProject("Pavilion", "pavilion")
	if err := repo.Create(project); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.BySlug("pavilion")
	if err != nil {
		t.Fatalf("BySlug failed: %v", err)
	}
	if got.Title != "Pavilion" {
		t.Errorf("got title %q", got.Title)
	}
	if len(got.Details) != 1 || got.Details[0].Content != "About it" {
		t.Errorf("details did not round-trip: %+v", got.Details)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags did not round-trip: %+v", got.Tags)
	}
}

func TestProjectRepository_DuplicateSlug(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	if err := repo.Create(testProject("First", "same-slug")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err := repo.Create(testProject("Second", "same-slug"))
	if !errors.Is(err, ErrSlugAlreadyExists) {
		t.Fatalf("expected ErrSlugAlreadyExists, got %v", err)
	}
}

func TestProjectRepository_CategoryFilter(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	a := testProject("Tower", "tower")
	a.Category = model.ProjectCategoryArchitecture
	b := testProject("Poster", "poster")
	b.Category = model.ProjectCategoryDesign
	for _, p := range []*model.Project{a, b} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := repo.Projects("")
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 projects unfiltered, got %d", len(all))
	}

	arch, err := repo.Projects(model.ProjectCategoryArchitecture)
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(arch) != 1 || arch[0].Slug != "tower" {
		t.Errorf("category filter broken: %+v", arch)
	}
}

func TestProjectRepository_Featured(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	p := testProject("Star", "star")
	p.IsFeatured = true
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(testProject("Plain", "plain")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	featured, err := repo.Featured()
	if err != nil {
		t.Fatalf("Featured failed: %v", err)
	}
	if len(featured) != 1 || featured[0].Slug != "star" {
		t.Errorf("unexpected featured set: %+v", featured)
	}
}

func TestProjectRepository_UpdateAndDelete(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))

	p := testProject("Before", "before")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	p.Title = "After"
	p.Slug = "after"
	if err := repo.Update(p); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := repo.ByID(p.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got.Title != "After" || got.Slug != "after" {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := repo.Delete(p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.ByID(p.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound after delete, got %v", err)
	}
	if err := repo.Delete(p.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound for double delete, got %v", err)
	}
}

func testPost(guid, title string) *model.BlogPost {
	return &model.BlogPost{
		ID:      uuid.New().String(),
		GUID:    guid,
		Title:   title,
		Link:    "https://blog.example.com/" + guid,
		PubDate: time.Now().UTC().Format(time.RFC3339),
		Preview: "preview text",
		Tags:    model.StringList{"essay"},
	}
}

func TestBlogPostRepository_UpsertIdempotent(t *testing.T) {
	repo := NewBlogPostRepository(setupTestDB(t))

	batch := []*model.BlogPost{testPost("g1", "One"), testPost("g2", "Two")}
	if err := repo.UpsertBatch(batch); err != nil {
		t.Fatalf("UpsertBatch failed: %v", err)
	}

	// Same guids again with a changed title: update in place, no duplicates
	batch[0].Title = "One Revised"
	if err := repo.UpsertBatch(batch); err != nil {
		t.Fatalf("second UpsertBatch failed: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 posts after re-sync, got %d", count)
	}

	got, err := repo.ByGUID("g1")
	if err != nil {
		t.Fatalf("ByGUID failed: %v", err)
	}
	if got.Title != "One Revised" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
}

func TestBlogPostRepository_SyncPreservesSEO(t *testing.T) {
	database := setupTestDB(t)
	repo := NewBlogPostRepository(database)

	post := testPost("g1", "Original")
	if err := repo.UpsertBatch([]*model.BlogPost{post}); err != nil {
		t.Fatalf("UpsertBatch failed: %v", err)
	}

	stored, err := repo.ByGUID("g1")
	if err != nil {
		t.Fatalf("ByGUID failed: %v", err)
	}
	slug := "curated-slug"
	seoTitle := "Curated Title"
	if err := repo.UpdateSEO(stored.ID, &slug, &seoTitle, nil, nil); err != nil {
		t.Fatalf("UpdateSEO failed: %v", err)
	}

	// Re-sync the same guid with new feed content
	post.Title = "Refreshed"
	if err := repo.UpsertBatch([]*model.BlogPost{post}); err != nil {
		t.Fatalf("re-sync failed: %v", err)
	}

	got, err := repo.ByGUID("g1")
	if err != nil {
		t.Fatalf("ByGUID failed: %v", err)
	}
	if got.Title != "Refreshed" {
		t.Errorf("feed fields should update, got title %q", got.Title)
	}
	if got.Slug == nil || *got.Slug != "curated-slug" {
		t.Errorf("SEO slug lost on re-sync: %v", got.Slug)
	}
	if got.SEOTitle == nil || *got.SEOTitle != "Curated Title" {
		t.Errorf("SEO title lost on re-sync: %v", got.SEOTitle)
	}
}
