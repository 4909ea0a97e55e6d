package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/inioluwa/atelier/internal/config"
	"github.com/inioluwa/atelier/internal/db"
	"github.com/inioluwa/atelier/internal/markdown"
	"github.com/inioluwa/atelier/internal/repository"
	"github.com/inioluwa/atelier/internal/service"
	"github.com/inioluwa/atelier/internal/storage"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	EmailService      *service.EmailService
	ProjectService    *service.ProjectService
	AboutService      *service.AboutService
	ManifestoService  *service.ManifestoService
	SocialLinkService *service.SocialLinkService
	MessageService    *service.MessageService
	SettingsService   *service.SettingsService
	BlogService       *service.BlogService
	FeedSyncService   *service.FeedSyncService
	DashboardService  *service.DashboardService
	SitemapService    *service.SitemapService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	projectRepository := repository.NewProjectRepository(database)
	aboutRepository := repository.NewAboutRepository(database)
	manifestoRepository := repository.NewManifestoRepository(database)
	socialLinkRepository := repository.NewSocialLinkRepository(database)
	messageRepository := repository.NewMessageRepository(database)
	settingsRepository := repository.NewSettingsRepository(database)
	blogPostRepository := repository.NewBlogPostRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	md := markdown.New()
	uploadService := service.NewUploadService(fileStorage)
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.NotifyEmail,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())
	if err := authService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %v", err)
	}

	projectService := service.NewProjectService(projectRepository, uploadService, md)
	aboutService := service.NewAboutService(aboutRepository, uploadService)
	manifestoService := service.NewManifestoService(manifestoRepository, md)
	socialLinkService := service.NewSocialLinkService(socialLinkRepository)
	messageService := service.NewMessageService(messageRepository, emailService)
	settingsService := service.NewSettingsService(settingsRepository)
	blogService := service.NewBlogService(blogPostRepository)
	feedSyncService := service.NewFeedSyncService(aboutRepository, blogPostRepository, cfg.FeedFetchTimeout)
	dashboardService := service.NewDashboardService(projectRepository, blogPostRepository, messageRepository)
	sitemapService := service.NewSitemapService(projectRepository, blogPostRepository, cfg.AppURL)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       authService,
		EmailService:      emailService,
		ProjectService:    projectService,
		AboutService:      aboutService,
		ManifestoService:  manifestoService,
		SocialLinkService: socialLinkService,
		MessageService:    messageService,
		SettingsService:   settingsService,
		BlogService:       blogService,
		FeedSyncService:   feedSyncService,
		DashboardService:  dashboardService,
		SitemapService:    sitemapService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
