package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fixitnow/internal/config"
	"fixitnow/internal/database"
	jwtsvc "fixitnow/internal/pkg/jwt"
	"fixitnow/internal/pkg/logger"
	"fixitnow/internal/repository"
	"fixitnow/internal/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat, router.ServiceName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, logg)
	if err != nil {
		logg.Fatal("database connect failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if cfg.AutoMigrate {
		if err := repository.Migrate(context.Background(), db); err != nil {
			logg.Fatal("migration failed", zap.Error(err))
		}
	}

	r := router.New(router.Options{
		DB:          db,
		JWT:         jwtsvc.New(cfg.JWTSecret, config.TokenTTL),
		Log:         logg,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logg.Info("http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
	}
}
