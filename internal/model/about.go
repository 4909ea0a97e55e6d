package model

// AboutContent is the singleton row (id=1) backing the about page.
// RSSURL doubles as the feed-sync source and lives here rather than in
// process config so an admin edit takes effect on the next sync.
type AboutContent struct {
	ID              int     `db:"id" json:"id"`
	Headline        string  `db:"headline" json:"headline"`
	Paragraph1      string  `db:"paragraph1" json:"paragraph1"`
	Paragraph2      string  `db:"paragraph2" json:"paragraph2"`
	ImageURL        string  `db:"image_url" json:"image_url"`
	CVURL           string  `db:"cv_url" json:"cv_url"`
	FaviconURL      *string `db:"favicon_url" json:"favicon_url"`
	SubstackURL     *string `db:"substack_url" json:"substack_url"`
	RSSURL          *string `db:"rss_url" json:"rss_url"`
	SEOTitle        *string `db:"seo_title" json:"seo_title"`
	MetaDescription *string `db:"meta_description" json:"meta_description"`
	OGImageURL      *string `db:"og_image_url" json:"og_image_url"`
}
