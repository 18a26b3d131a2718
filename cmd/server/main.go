package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "digishield-backend/internal/api/http"
	"digishield-backend/internal/config"
	"digishield-backend/internal/jobs"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository/postgres"
	"digishield-backend/internal/scheduler"
	"digishield-backend/internal/security"
	"digishield-backend/internal/service"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Digishield backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	sessionExpiry := time.Duration(cfg.Admin.SessionExpiry) * time.Minute
	sessions := security.NewSessionManager(cfg.Admin.SessionSecret, cfg.Admin.Email, cfg.Admin.PasswordHash, sessionExpiry)

	// Initialize Services
	notifier := service.NewNotificationService()
	appSvc := service.NewApplicationService(store.OrganisationApplicationRepository, notifier)
	volunteerSvc := service.NewVolunteerService(store.VolunteerRepository, notifier)
	newsletterSvc := service.NewNewsletterService(store.NewsletterRepository)
	mediaSvc := service.NewMediaService(store.MediaRepository, cfg.Media.PublicDir, cfg.Media.Category)
	teamSvc := service.NewTeamService(store.TeamRepository)
	statsSvc := service.NewStatsService(
		store.OrganisationApplicationRepository,
		store.VolunteerRepository,
		store.NewsletterRepository,
		store.MediaRepository,
	)

	// Initialize HTTP handlers
	validate := validator.New()
	handlers := httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(sessions, sessionExpiry),
		Application: httpapi.NewApplicationHandler(appSvc, validate),
		Volunteer:   httpapi.NewVolunteerHandler(volunteerSvc, validate),
		Newsletter:  httpapi.NewNewsletterHandler(newsletterSvc),
		Media:       httpapi.NewMediaHandler(mediaSvc),
		Team:        httpapi.NewTeamHandler(teamSvc),
		Stats:       httpapi.NewStatsHandler(statsSvc),
	}
	router := httpapi.NewRouter(handlers, sessions)

	// Start scheduled jobs
	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(mediaSvc, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
