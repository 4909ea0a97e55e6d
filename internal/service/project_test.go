package service

import (
	"strings"
	"testing"
	"time"

	"github.com/inioluwa/atelier/internal/markdown"
	"github.com/inioluwa/atelier/internal/model"
)

type fakeProjectRepo struct {
	created []*model.Project
	updated []*model.Project
	byID    *model.Project
}

func (f *fakeProjectRepo) Create(p *model.Project) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProjectRepo) ByID(id string) (*model.Project, error) {
	if f.byID != nil {
		return f.byID, nil
	}
	return nil, errNotFoundForTest
}

func (f *fakeProjectRepo) BySlug(slug string) (*model.Project, error)        { return nil, errNotFoundForTest }
func (f *fakeProjectRepo) Projects(category string) ([]*model.Project, error) { return nil, nil }
func (f *fakeProjectRepo) Featured() ([]*model.Project, error)                { return nil, nil }
func (f *fakeProjectRepo) Update(p *model.Project) error {
	f.updated = append(f.updated, p)
	return nil
}
func (f *fakeProjectRepo) Delete(id string) error { return nil }
func (f *fakeProjectRepo) Count() (int, error)    { return len(f.created), nil }

var errNotFoundForTest = &notFoundErr{}

type notFoundErr struct{}

func (*notFoundErr) Error() string { return "not found" }

func newProjectService(repo *fakeProjectRepo, store *fakeStorage) *ProjectService {
	return NewProjectService(repo, NewUploadService(store), markdown.New())
}

func TestProjectService_CreateDerivesSlug(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := newProjectService(repo, newFakeStorage())

	input := ProjectInput{
		Title:       "Café Annex: Phase Two",
		Category:    model.ProjectCategoryArchitecture,
		Description: "An annex",
	}
	project, err := svc.Create(input, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if project.Slug != "cafe-annex-phase-two" {
		t.Errorf("derived slug %q", project.Slug)
	}
	if project.ID == "" || project.CreatedAt.IsZero() {
		t.Error("expected id and created_at assigned")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(repo.created))
	}
}

func TestProjectService_RejectsBadInput(t *testing.T) {
	svc := newProjectService(&fakeProjectRepo{}, newFakeStorage())

	cases := []struct {
		name  string
		input ProjectInput
	}{
		{"missing title", ProjectInput{Category: model.ProjectCategoryDesign, Description: "d"}},
		{"missing description", ProjectInput{Title: "T", Category: model.ProjectCategoryDesign}},
		{"bad category", ProjectInput{Title: "T", Category: "Sculpture", Description: "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.input, nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestProjectService_UploadFailureAbortsWrite(t *testing.T) {
	repo := &fakeProjectRepo{}
	store := newFakeStorage()
	store.saveErr = errNotFoundForTest
	svc := newProjectService(repo, store)

	form := buildForm(t, nil, map[string]struct {
		Name string
		Data []byte
	}{
		"image": {Name: "cover.png", Data: pngBytes},
	})

	input := ProjectInput{
		Title:       "Doomed",
		Category:    model.ProjectCategoryDesign,
		Description: "d",
	}
	if _, err := svc.Create(input, form); err == nil {
		t.Fatal("expected upload failure to surface")
	}
	if len(repo.created) != 0 {
		t.Error("no row should be written when an upload fails")
	}
}

func TestProjectService_UpdatePreservesIdentity(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeProjectRepo{byID: &model.Project{ID: "p-1", CreatedAt: created}}
	svc := newProjectService(repo, newFakeStorage())

	input := ProjectInput{
		Title:       "Renamed",
		Slug:        "renamed",
		Category:    model.ProjectCategoryInnovation,
		Description: "d",
	}
	project, err := svc.Update("p-1", input, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if project.ID != "p-1" {
		t.Errorf("id changed to %q", project.ID)
	}
	if !project.CreatedAt.Equal(created) {
		t.Errorf("created_at changed to %v", project.CreatedAt)
	}
}

func TestProjectService_RendersTextBlocks(t *testing.T) {
	repo := &fakeProjectRepo{}
	svc := newProjectService(repo, newFakeStorage())

	p := &model.Project{
		ID: "p-1",
		Details: model.DetailBlocks{
			{Type: model.DetailBlockText, Content: "Some **bold** prose"},
			{Type: model.DetailBlockImage, Content: "https://cdn.test/images/x.png"},
		},
	}
	svc.renderDetails(p)

	if !strings.Contains(p.Details[0].HTML, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %q", p.Details[0].HTML)
	}
	if p.Details[1].HTML != "" {
		t.Errorf("image block should not render HTML: %q", p.Details[1].HTML)
	}
}
