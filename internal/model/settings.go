package model

const (
	SiteModeLive        = "live"
	SiteModeComingSoon  = "coming_soon"
	SiteModeMaintenance = "maintenance"
)

// ValidSiteMode reports whether mode is a known site mode.
func ValidSiteMode(mode string) bool {
	switch mode {
	case SiteModeLive, SiteModeComingSoon, SiteModeMaintenance:
		return true
	}
	return false
}

// Settings is the singleton row (id=1) of mutable site configuration.
// It is read fresh per operation, never cached process-wide.
type Settings struct {
	ID        int    `db:"id" json:"id"`
	SiteTitle string `db:"site_title" json:"site_title"`
	SiteMode  string `db:"site_mode" json:"site_mode"`
}
