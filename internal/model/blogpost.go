package model

import (
	"time"
)

// BlogPost is an external post mirrored from the syndication feed.
// Rows are created or refreshed only by a sync run, keyed by guid.
// SEO fields are never populated by sync; they are edited explicitly.
type BlogPost struct {
	ID              string     `db:"id" json:"id"`
	GUID            string     `db:"guid" json:"guid"`
	Title           string     `db:"title" json:"title"`
	Link            string     `db:"link" json:"link"`
	PubDate         string     `db:"pub_date" json:"pub_date"` // RFC 3339, UTC
	Preview         string     `db:"preview" json:"preview"`
	Tags            StringList `db:"tags" json:"tags"`
	Slug            *string    `db:"slug" json:"slug"`
	SEOTitle        *string    `db:"seo_title" json:"seo_title"`
	MetaDescription *string    `db:"meta_description" json:"meta_description"`
	OGImageURL      *string    `db:"og_image_url" json:"og_image_url"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}
