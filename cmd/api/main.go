package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sesgrg/sesg-backend/config"
	"github.com/sesgrg/sesg-backend/internal/auth/service"
	"github.com/sesgrg/sesg-backend/internal/bootstrap"
	"github.com/sesgrg/sesg-backend/internal/logging"
	"github.com/sesgrg/sesg-backend/internal/store"
)

const serviceName = "SESGRG API"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	if err := logging.Init(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.WithError(err).Fatal("init logging")
	}
	for _, name := range cfg.InsecureDefaults() {
		logrus.WithField("setting", name).Warn("using insecure built-in default; set it in the environment")
	}

	seed, err := store.LoadSeed(cfg.App.SeedPath)
	if err != nil {
		logrus.WithError(err).Fatal("load seed data")
	}
	st := store.New(seed)

	tokens := service.NewTokenIssuer(cfg.Auth.SecretKey, cfg.TokenTTL())
	provider := service.NewStaticProvider(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, tokens)

	bootstrap.SetGinMode(cfg.App.Environment)
	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.AllowedOrigins(),
		Store:          st,
		Auth:           provider,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("shutdown")
	}
	logrus.Info("server exited")
}
