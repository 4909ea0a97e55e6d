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
	ErrSocialLinkNotFound = errors.New("social link not found")
)

type SocialLinkRepository interface {
	Create(link *model.SocialLink) error
	ByID(id string) (*model.SocialLink, error)
	Links() ([]*model.SocialLink, error)
	Update(link *model.SocialLink) error
	Delete(id string) error
}

type socialLinkRepository struct {
	db *sqlx.DB
}

func NewSocialLinkRepository(db *sqlx.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) Create(link *model.SocialLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}

	query := `INSERT INTO social_links (id, name, url, icon, sort_order, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, link.ID, link.Name, link.URL, link.Icon, link.SortOrder, link.CreatedAt)
	return err
}

func (r *socialLinkRepository) ByID(id string) (*model.SocialLink, error) {
	link := &model.SocialLink{}
	err := r.db.Get(link, `SELECT * FROM social_links WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrSocialLinkNotFound
	}
	return link, err
}

func (r *socialLinkRepository) Links() ([]*model.SocialLink, error) {
	var links []*model.SocialLink
	err := r.db.Select(&links, `SELECT * FROM social_links ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *socialLinkRepository) Update(link *model.SocialLink) error {
	query := `UPDATE social_links SET name = $1, url = $2, icon = $3, sort_order = $4 WHERE id = $5`

	result, err := r.db.Exec(query, link.Name, link.URL, link.Icon, link.SortOrder, link.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSocialLinkNotFound
	}
	return nil
}

func (r *socialLinkRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSocialLinkNotFound
	}
	return nil
}
