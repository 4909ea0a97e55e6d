package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/model"
)

type SettingsRepository interface {
	Get() (*model.Settings, error)
	Update(settings *model.Settings) error
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (*model.Settings, error) {
	settings := &model.Settings{}
	err := r.db.Get(settings, `SELECT * FROM settings WHERE id = 1`)
	if err == sql.ErrNoRows {
		// Defaults if the seed row ever goes missing; never an error.
		return &model.Settings{ID: 1, SiteTitle: "Digital Atelier", SiteMode: model.SiteModeLive}, nil
	}
	return settings, err
}

func (r *settingsRepository) Update(settings *model.Settings) error {
	_, err := r.db.Exec(`UPDATE settings SET site_title = $1, site_mode = $2 WHERE id = 1`,
		settings.SiteTitle, settings.SiteMode)
	return err
}
