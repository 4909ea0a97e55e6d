package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/model"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrSlugAlreadyExists = errors.New("a project with this slug already exists")
)

type ProjectRepository interface {
	Create(project *model.Project) error
	ByID(id string) (*model.Project, error)
	BySlug(slug string) (*model.Project, error)
	Projects(category string) ([]*model.Project, error)
	Featured() ([]*model.Project, error)
	Update(project *model.Project) error
	Delete(id string) error
	Count() (int, error)
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// slugTaken reports whether another project already owns the slug.
func (r *projectRepository) slugTaken(slug, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM projects WHERE slug = $1 AND id != $2`, slug, excludeID,
	).Scan(&count)
	return count > 0, err
}

func (r *projectRepository) Create(project *model.Project) error {
	taken, err := r.slugTaken(project.Slug, project.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugAlreadyExists
	}

	query := `INSERT INTO projects (
	              id, title, slug, category, description, image_url, details, tags,
	              year, is_featured, seo_title, meta_description, og_image_url, created_at
	          ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = r.db.Exec(query,
		project.ID,
		project.Title,
		project.Slug,
		project.Category,
		project.Description,
		project.ImageURL,
		project.Details,
		project.Tags,
		project.Year,
		project.IsFeatured,
		project.SEOTitle,
		project.MetaDescription,
		project.OGImageURL,
		project.CreatedAt,
	)
	return err
}

func (r *projectRepository) ByID(id string) (*model.Project, error) {
	project := &model.Project{}
	err := r.db.Get(project, `SELECT * FROM projects WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	return project, err
}

func (r *projectRepository) BySlug(slug string) (*model.Project, error) {
	project := &model.Project{}
	err := r.db.Get(project, `SELECT * FROM projects WHERE slug = $1`, slug)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	return project, err
}

func (r *projectRepository) Projects(category string) ([]*model.Project, error) {
	var projects []*model.Project
	var err error

	if category != "" && category != "All" {
		err = r.db.Select(&projects,
			`SELECT * FROM projects WHERE category = $1 ORDER BY created_at DESC`, category)
	} else {
		err = r.db.Select(&projects, `SELECT * FROM projects ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Featured() ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Select(&projects,
		`SELECT * FROM projects WHERE is_featured = $1 ORDER BY created_at DESC`, true)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	taken, err := r.slugTaken(project.Slug, project.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugAlreadyExists
	}

	query := `UPDATE projects
	          SET title = $1, slug = $2, category = $3, description = $4, image_url = $5,
	              details = $6, tags = $7, year = $8, is_featured = $9,
	              seo_title = $10, meta_description = $11, og_image_url = $12
	          WHERE id = $13`

	result, err := r.db.Exec(query,
		project.Title,
		project.Slug,
		project.Category,
		project.Description,
		project.ImageURL,
		project.Details,
		project.Tags,
		project.Year,
		project.IsFeatured,
		project.SEOTitle,
		project.MetaDescription,
		project.OGImageURL,
		project.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}
