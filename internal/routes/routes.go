package routes

import (
	"net/http"

	"github.com/inioluwa/atelier/internal/app"
	"github.com/inioluwa/atelier/internal/handler"
	"github.com/inioluwa/atelier/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	seo := handler.NewSEOHandler(app.SitemapService)
	auth := handler.NewAuthHandler(app.AuthService)
	project := handler.NewProjectHandler(app.ProjectService)
	about := handler.NewAboutHandler(app.AboutService)
	manifesto := handler.NewManifestoHandler(app.ManifestoService)
	social := handler.NewSocialLinkHandler(app.SocialLinkService)
	message := handler.NewMessageHandler(app.MessageService)
	settings := handler.NewSettingsHandler(app.SettingsService)
	blog := handler.NewBlogHandler(app.BlogService, app.FeedSyncService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Content
	mux.HandleFunc("GET /api/projects", project.List)
	mux.HandleFunc("GET /api/projects/featured", project.Featured)
	mux.HandleFunc("GET /api/projects/{slug}", project.BySlug)
	mux.HandleFunc("GET /api/posts", blog.List)
	mux.HandleFunc("GET /api/about", about.Get)
	mux.HandleFunc("GET /api/manifesto", manifesto.Get)
	mux.HandleFunc("GET /api/social-links", social.List)
	mux.HandleFunc("GET /api/settings", settings.Public)

	// Contact form (rate limited)
	contactLimiter := middleware.RateLimitContact()
	mux.HandleFunc("POST /api/messages", contactLimiter(message.Create))

	// Auth (rate limited)
	authLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/login", authLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAdmin(auth.Me))

	// ============================================================================
	// ADMIN ROUTES (/api/admin/*)
	// ============================================================================

	mux.HandleFunc("GET /api/admin/dashboard", middleware.RequireAdmin(dashboard.Counts))

	// Projects
	mux.HandleFunc("POST /api/admin/projects", middleware.RequireAdmin(project.Create))
	mux.HandleFunc("PUT /api/admin/projects/{id}", middleware.RequireAdmin(project.Update))
	mux.HandleFunc("DELETE /api/admin/projects/{id}", middleware.RequireAdmin(project.Delete))

	// About
	mux.HandleFunc("PUT /api/admin/about", middleware.RequireAdmin(about.Update))

	// Manifesto
	mux.HandleFunc("PUT /api/admin/manifesto", middleware.RequireAdmin(manifesto.UpdateCoreBelief))
	mux.HandleFunc("POST /api/admin/manifesto/principles", middleware.RequireAdmin(manifesto.CreatePrinciple))
	mux.HandleFunc("PUT /api/admin/manifesto/principles/{id}", middleware.RequireAdmin(manifesto.UpdatePrinciple))
	mux.HandleFunc("DELETE /api/admin/manifesto/principles/{id}", middleware.RequireAdmin(manifesto.DeletePrinciple))

	// Social links
	mux.HandleFunc("POST /api/admin/social-links", middleware.RequireAdmin(social.Create))
	mux.HandleFunc("PUT /api/admin/social-links/{id}", middleware.RequireAdmin(social.Update))
	mux.HandleFunc("DELETE /api/admin/social-links/{id}", middleware.RequireAdmin(social.Delete))

	// Messages
	mux.HandleFunc("GET /api/admin/messages", middleware.RequireAdmin(message.List))
	mux.HandleFunc("PATCH /api/admin/messages/{id}", middleware.RequireAdmin(message.UpdateStatus))
	mux.HandleFunc("DELETE /api/admin/messages/{id}", middleware.RequireAdmin(message.Delete))

	// Settings
	mux.HandleFunc("GET /api/admin/settings", middleware.RequireAdmin(settings.Get))
	mux.HandleFunc("PUT /api/admin/settings", middleware.RequireAdmin(settings.Update))

	// Blog
	mux.HandleFunc("POST /api/admin/posts/sync", middleware.RequireAdmin(blog.Sync))
	mux.HandleFunc("PATCH /api/admin/posts/{id}", middleware.RequireAdmin(blog.UpdateSEO))
	mux.HandleFunc("DELETE /api/admin/posts/{id}", middleware.RequireAdmin(blog.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
		middleware.SiteMode(app.SettingsService),
	)
}
