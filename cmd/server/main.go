// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/teampulse/standup/internal/config"
	"github.com/teampulse/standup/internal/database"
	"github.com/teampulse/standup/internal/database/migrate"
	"github.com/teampulse/standup/internal/health"
	"github.com/teampulse/standup/internal/identity"
	"github.com/teampulse/standup/internal/middleware"
	profileRepository "github.com/teampulse/standup/internal/profile/repository"
	profileRouter "github.com/teampulse/standup/internal/profile/router"
	reportRouter "github.com/teampulse/standup/internal/report/router"
	updateRepository "github.com/teampulse/standup/internal/update/repository"
	updateRouter "github.com/teampulse/standup/internal/update/router"
	"github.com/teampulse/standup/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gin.SetMode(cfg.GinMode)

	db, profiles, updates, err := buildStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatalw("failed to initialize store", "driver", cfg.Store.Driver, "error", err)
	}
	if db != nil {
		defer func() {
			if closeErr := database.Close(db); closeErr != nil {
				zapLogger.Errorw("failed to close database", "error", closeErr)
			}
		}()
	}

	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))
	r.Use(cors.Default())

	r.GET("/health", health.New(db, zapLogger).Check)

	authed := r.Group("/", identity.Middleware([]byte(cfg.Auth.JWTSecret), zapLogger))
	profileRouter.RegisterRoutes(authed, profiles, zapLogger)
	updateRouter.RegisterRoutes(authed, updates, profiles, zapLogger)
	reportRouter.RegisterRoutes(authed, updates, profiles, cfg.Summarizer, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "addr", srv.Addr, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Errorw("forced shutdown", "error", err)
	}
}

// buildStore selects the persistence backend. The returned db is nil for
// the in-memory store.
func buildStore(cfg appConfig.Config, zapLogger *zap.SugaredLogger) (*gorm.DB, profileRepository.Repository, updateRepository.Repository, error) {
	switch cfg.Store.Driver {
	case appConfig.StoreDriverMemory:
		profiles := profileRepository.NewMemory()
		updates := updateRepository.NewMemory(profiles)
		return nil, profiles, updates, nil
	default:
		db, err := database.New()
		if err != nil {
			return nil, nil, nil, err
		}
		if err := migrate.Migrate(db); err != nil {
			return nil, nil, nil, err
		}
		profiles := profileRepository.New(db, zapLogger)
		updates := updateRepository.New(db, zapLogger)
		return db, profiles, updates, nil
	}
}
