package model

import (
	"time"
)

// ManifestoContent is the singleton row (id=1) holding the core belief.
type ManifestoContent struct {
	ID         int    `db:"id" json:"id"`
	CoreBelief string `db:"core_belief" json:"core_belief"`
}

type ManifestoPrinciple struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
