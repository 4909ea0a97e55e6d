package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/model"
)

var (
	ErrAboutContentNotFound = errors.New("about content not found")
)

type AboutRepository interface {
	Get() (*model.AboutContent, error)
	Update(content *model.AboutContent) error
}

type aboutRepository struct {
	db *sqlx.DB
}

func NewAboutRepository(db *sqlx.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) Get() (*model.AboutContent, error) {
	content := &model.AboutContent{}
	err := r.db.Get(content, `SELECT * FROM about_content WHERE id = 1`)
	if err == sql.ErrNoRows {
		return nil, ErrAboutContentNotFound
	}
	return content, err
}

func (r *aboutRepository) Update(content *model.AboutContent) error {
	query := `UPDATE about_content
	          SET headline = $1, paragraph1 = $2, paragraph2 = $3, image_url = $4,
	              cv_url = $5, favicon_url = $6, substack_url = $7, rss_url = $8,
	              seo_title = $9, meta_description = $10, og_image_url = $11
	          WHERE id = 1`

	result, err := r.db.Exec(query,
		content.Headline,
		content.Paragraph1,
		content.Paragraph2,
		content.ImageURL,
		content.CVURL,
		content.FaviconURL,
		content.SubstackURL,
		content.RSSURL,
		content.SEOTitle,
		content.MetaDescription,
		content.OGImageURL,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAboutContentNotFound
	}
	return nil
}
