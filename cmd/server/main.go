package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"campuscal/config"
	_ "campuscal/docs"
	"campuscal/internal/adapters/auth"
	"campuscal/internal/adapters/email"
	httpdelivery "campuscal/internal/delivery/http"
	"campuscal/internal/delivery/http/controllers"
	"campuscal/internal/delivery/http/middleware"
	"campuscal/internal/domain"
	"campuscal/internal/repository/postgres"
	"campuscal/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Campus Calendar API
// @version 1.0
// @description REST API for the college event calendar.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger depends on config, so this one failure goes to stderr directly.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.EnsureSchema(db); err != nil {
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	var announcer domain.AnnouncementService
	if len(cfg.AnnounceRecipients) > 0 {
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: email.SESConfig{
				Region:             cfg.Email.SESRegion,
				AccessKeyID:        cfg.Email.SESAccessKeyID,
				SecretAccessKey:    cfg.Email.SESSecretAccessKey,
				InsecureSkipVerify: cfg.Email.SESInsecureTLS,
			},
		})
		if err != nil {
			logger.Error("create mailer", "err", err)
			os.Exit(1)
		}
		announcer = services.NewAnnouncementService(mailer, email.NewTemplateRenderer(), cfg.AnnounceRecipients)
	}

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)

	eventService := services.NewEventService(eventRepo, announcer, serviceTimeout)
	authService := services.NewAuthService(
		userRepo,
		auth.NewBcryptHasher(0),
		auth.NewJWTIssuer(cfg.JWTSecret),
		serviceTimeout,
	)

	eventController := controllers.NewEventController(logger, eventService)
	authController := controllers.NewAuthController(logger, authService)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mux := httpdelivery.NewRouter(eventController, authController, verifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
