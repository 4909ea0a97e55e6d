package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/service"
)

// sitemodeExemptPrefixes stay reachable in every mode so the admin can log
// in and flip the switch back.
var sitemodeExemptPrefixes = []string{
	"/api/auth/",
	"/api/admin/",
	"/health",
	"/robots.txt",
}

// SiteMode gates public content behind the configured site mode. Settings
// are read per request so a mode change takes effect immediately.
func SiteMode(settings *service.SettingsService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range sitemodeExemptPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) || r.URL.Path == strings.TrimSuffix(prefix, "/") {
					next.ServeHTTP(w, r)
					return
				}
			}

			current, err := settings.Get()
			if err != nil {
				// Fail open: a broken settings read should not take the
				// whole site down.
				next.ServeHTTP(w, r)
				return
			}

			switch current.SiteMode {
			case model.SiteModeComingSoon, model.SiteModeMaintenance:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "3600")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "site unavailable",
					"mode":  current.SiteMode,
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
