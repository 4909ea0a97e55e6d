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
	ErrBlogPostNotFound = errors.New("blog post not found")
)

type BlogPostRepository interface {
	// UpsertBatch writes posts in one transaction keyed by guid: existing
	// guids are updated in place, new guids inserted. SEO fields are left
	// untouched on update since sync never invents SEO metadata.
	UpsertBatch(posts []*model.BlogPost) error
	Posts() ([]*model.BlogPost, error)
	ByGUID(guid string) (*model.BlogPost, error)
	UpdateSEO(id string, slug, seoTitle, metaDescription, ogImageURL *string) error
	Delete(id string) error
	Count() (int, error)
}

type blogPostRepository struct {
	db *sqlx.DB
}

func NewBlogPostRepository(db *sqlx.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) UpsertBatch(posts []*model.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO blog_posts (id, guid, title, link, pub_date, preview, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (guid) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			pub_date = excluded.pub_date,
			preview = excluded.preview,
			tags = excluded.tags`

	now := time.Now()
	for _, post := range posts {
		if post.ID == "" {
			post.ID = uuid.New().String()
		}
		if post.CreatedAt.IsZero() {
			post.CreatedAt = now
		}

		_, err = tx.Exec(query,
			post.ID,
			post.GUID,
			post.Title,
			post.Link,
			post.PubDate,
			post.Preview,
			post.Tags,
			post.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *blogPostRepository) Posts() ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	err := r.db.Select(&posts, `SELECT * FROM blog_posts ORDER BY pub_date DESC`)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) ByGUID(guid string) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	err := r.db.Get(post, `SELECT * FROM blog_posts WHERE guid = $1`, guid)
	if err == sql.ErrNoRows {
		return nil, ErrBlogPostNotFound
	}
	return post, err
}

func (r *blogPostRepository) UpdateSEO(id string, slug, seoTitle, metaDescription, ogImageURL *string) error {
	query := `UPDATE blog_posts
	          SET slug = $1, seo_title = $2, meta_description = $3, og_image_url = $4
	          WHERE id = $5`

	result, err := r.db.Exec(query, slug, seoTitle, metaDescription, ogImageURL, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

func (r *blogPostRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

func (r *blogPostRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	return count, err
}
