package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/model"
)

var (
	ErrPrincipleNotFound = errors.New("manifesto principle not found")
)

type ManifestoRepository interface {
	Content() (*model.ManifestoContent, error)
	UpdateContent(coreBelief string) error

	CreatePrinciple(principle *model.ManifestoPrinciple) error
	PrincipleByID(id string) (*model.ManifestoPrinciple, error)
	Principles() ([]*model.ManifestoPrinciple, error)
	UpdatePrinciple(principle *model.ManifestoPrinciple) error
	DeletePrinciple(id string) error
}

type manifestoRepository struct {
	db *sqlx.DB
}

func NewManifestoRepository(db *sqlx.DB) ManifestoRepository {
	return &manifestoRepository{db: db}
}

func (r *manifestoRepository) Content() (*model.ManifestoContent, error) {
	content := &model.ManifestoContent{}
	err := r.db.Get(content, `SELECT * FROM manifesto_content WHERE id = 1`)
	if err == sql.ErrNoRows {
		// Singleton row is seeded by migrations; treat absence as empty.
		return &model.ManifestoContent{ID: 1}, nil
	}
	return content, err
}

func (r *manifestoRepository) UpdateContent(coreBelief string) error {
	_, err := r.db.Exec(`UPDATE manifesto_content SET core_belief = $1 WHERE id = 1`, coreBelief)
	return err
}

func (r *manifestoRepository) CreatePrinciple(principle *model.ManifestoPrinciple) error {
	if principle.ID == "" {
		principle.ID = uuid.New().String()
	}
	if principle.CreatedAt.IsZero() {
		principle.CreatedAt = time.Now()
	}

	query := `INSERT INTO manifesto_principles (id, title, description, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, principle.ID, principle.Title, principle.Description, principle.CreatedAt)
	return err
}

func (r *manifestoRepository) PrincipleByID(id string) (*model.ManifestoPrinciple, error) {
	principle := &model.ManifestoPrinciple{}
	err := r.db.Get(principle, `SELECT * FROM manifesto_principles WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrPrincipleNotFound
	}
	return principle, err
}

func (r *manifestoRepository) Principles() ([]*model.ManifestoPrinciple, error) {
	var principles []*model.ManifestoPrinciple
	err := r.db.Select(&principles, `SELECT * FROM manifesto_principles ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	return principles, nil
}

func (r *manifestoRepository) UpdatePrinciple(principle *model.ManifestoPrinciple) error {
	query := `UPDATE manifesto_principles SET title = $1, description = $2 WHERE id = $3`

	result, err := r.db.Exec(query, principle.Title, principle.Description, principle.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPrincipleNotFound
	}
	return nil
}

func (r *manifestoRepository) DeletePrinciple(id string) error {
	result, err := r.db.Exec(`DELETE FROM manifesto_principles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPrincipleNotFound
	}
	return nil
}
