package model

import (
	"time"
)

// AvailableIcons lists the icon names the front end knows how to render.
var AvailableIcons = []string{
	"linkedin",
	"instagram",
	"twitter",
	"send",
	"bookOpen",
	"atSign",
	"link",
}

// ValidIcon reports whether name is a renderable icon.
func ValidIcon(name string) bool {
	for _, icon := range AvailableIcons {
		if icon == name {
			return true
		}
	}
	return false
}

type SocialLink struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	URL       string    `db:"url" json:"url"`
	Icon      string    `db:"icon" json:"icon"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
