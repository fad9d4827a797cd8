package main

import (
	"log/slog"
	"os"
	"time"

	httpapi "github.com/sohanurdev/portfolio-backend/internal/api/http"
	"github.com/sohanurdev/portfolio-backend/internal/config"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/repository/model"
	"github.com/sohanurdev/portfolio-backend/internal/service"
	"github.com/sohanurdev/portfolio-backend/lib/logger/sl"
	"github.com/sohanurdev/portfolio-backend/lib/logger/slogpretty"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	if cfg.Auth.Secret == "" {
		log.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	var (
		accountRepo     repository.AccountRepository
		contactRepo     repository.ContactRepository
		appointmentRepo repository.AppointmentRepository
		videoRepo       repository.VideoRepository
		contentRepo     repository.SiteContentRepository
	)

	if cfg.Database.DSN != "" {
		db, err := connectDatabase(cfg.Database)
		if err != nil {
			log.Error("failed to connect database", sl.Err(err))
			os.Exit(1)
		}
		accountRepo = repository.NewPostgresAccountRepository(db)
		contactRepo = repository.NewPostgresContactRepository(db)
		appointmentRepo = repository.NewPostgresAppointmentRepository(db)
		videoRepo = repository.NewPostgresVideoRepository(db)
		contentRepo = repository.NewPostgresSiteContentRepository(db)
	} else {
		log.Warn("no database dsn configured, using in-memory storage")
		accounts := repository.NewInMemoryAccountRepository()
		appointments := repository.NewInMemoryAppointmentRepository(accounts)
		accounts.AttachAppointments(appointments)
		accountRepo = accounts
		appointmentRepo = appointments
		contactRepo = repository.NewInMemoryContactRepository()
		videoRepo = repository.NewInMemoryVideoRepository()
		contentRepo = repository.NewInMemorySiteContentRepository()
	}

	accountService := service.NewAccountService(accountRepo, log)
	contactService := service.NewContactService(contactRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, accountRepo, log)
	videoService := service.NewVideoService(videoRepo, log)
	contentService := service.NewSiteContentService(contentRepo, log)

	router := httpapi.SetupRouter(
		httpapi.NewAccountController(accountService),
		httpapi.NewAuthController(accountService, cfg.Auth.Secret, cfg.Auth.TokenTTL),
		httpapi.NewContactController(contactService),
		httpapi.NewAppointmentController(appointmentService),
		httpapi.NewVideoController(videoService),
		httpapi.NewContentController(contentService),
		cfg.HTTP.AllowedOrigins,
		cfg.Auth.Secret,
	)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", sl.Err(err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(
		&model.Account{},
		&model.Contact{},
		&model.Appointment{},
		&model.Video{},
		&model.SiteContent{},
	)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
