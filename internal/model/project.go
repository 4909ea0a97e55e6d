package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	ProjectCategoryArchitecture = "Architecture"
	ProjectCategoryDesign       = "Design"
	ProjectCategoryInnovation   = "Innovation"
)

// ProjectCategories lists the valid project categories.
var ProjectCategories = []string{
	ProjectCategoryArchitecture,
	ProjectCategoryDesign,
	ProjectCategoryInnovation,
}

const (
	DetailBlockText  = "text"
	DetailBlockImage = "image"
	DetailBlockQuote = "quote"
)

// DetailBlock is one element of a project's ordered long-form content.
// For text and quote blocks Content holds the prose; for image blocks it
// holds the stored asset URL. HTML is derived from text blocks at read time
// and never persisted.
type DetailBlock struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	HTML    string `json:"html,omitempty"`
}

// DetailBlocks stores the ordered block list as a JSON array in a TEXT column.
type DetailBlocks []DetailBlock

func (d DetailBlocks) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *DetailBlocks) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DetailBlocks{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into DetailBlocks", src)
	}
}

type Project struct {
	ID              string       `db:"id" json:"id"`
	Title           string       `db:"title" json:"title"`
	Slug            string       `db:"slug" json:"slug"`
	Category        string       `db:"category" json:"category"`
	Description     string       `db:"description" json:"description"`
	ImageURL        *string      `db:"image_url" json:"image_url"`
	Details         DetailBlocks `db:"details" json:"details"`
	Tags            StringList   `db:"tags" json:"tags"`
	Year            *int         `db:"year" json:"year"`
	IsFeatured      bool         `db:"is_featured" json:"is_featured"`
	SEOTitle        *string      `db:"seo_title" json:"seo_title"`
	MetaDescription *string      `db:"meta_description" json:"meta_description"`
	OGImageURL      *string      `db:"og_image_url" json:"og_image_url"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
}
