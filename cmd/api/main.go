package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-internship-backend/config"
	_ "go-internship-backend/docs" // Important for Swagger
	v1 "go-internship-backend/internal/delivery/http/v1"
	"go-internship-backend/internal/repository/postgres"
	"go-internship-backend/internal/usecase"
	"go-internship-backend/pkg/database"
	"go-internship-backend/pkg/logger"
	"go-internship-backend/pkg/redis"
	"go-internship-backend/pkg/security"
	"go-internship-backend/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

// @title           Internship Matcher API
// @version         1.0
// @description     Matches candidates to internships: accounts, profiles, recommendations and applications.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.Env)
	logger.Log.Info("Starting internship backend", "port", cfg.Port, "env", cfg.Env)

	secLogger := security.InitSecurityLogger("internship-backend", cfg.Env)
	defer func() { _ = secLogger.Sync() }()

	// 3. Setup Database
	ctx := context.Background()
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redisPing usecase.Pinger
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			redisPing = redis.HealthCheck
			defer func() { _ = redis.Close() }()
		}
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	internshipRepo := postgres.NewInternshipRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup UseCases
	sessions := security.NewSessionManager(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	validate := validation.New()

	authUC := usecase.NewAuthUsecase(userRepo, candidateRepo, hasher, sessions)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, userRepo, validate)
	internshipUC := usecase.NewInternshipUsecase(internshipRepo, cfg.RecommendationLimit)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, candidateRepo, internshipRepo)
	healthUC := usecase.NewHealthUsecase(dbPool.Ping, redisPing)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CandidateUC:   candidateUC,
		InternshipUC:  internshipUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		Sessions:      sessions,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
