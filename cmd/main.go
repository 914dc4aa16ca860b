package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trackpit/internal/auth"
	"github.com/ukydev/trackpit/internal/config"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/events"
	"github.com/ukydev/trackpit/internal/handlers"
	"github.com/ukydev/trackpit/internal/middleware"
)

func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.MQTT.Broker == "" {
		log.Info("MQTT_BROKER not set, change events disabled")
		return events.NopPublisher{}, nil
	}
	return events.NewMQTTPublisher(cfg.MQTT.Broker, cfg.MQTT.ClientID, cfg.MQTT.TopicPrefix)
}

func newAuthMiddleware(cfg *config.Config) (*middleware.AuthMiddleware, error) {
	if !cfg.AuthEnabled() {
		log.Warn("JWT_SECRET not set, dashboard is open to anyone who can reach it")
		return middleware.NewAuthMiddleware(nil), nil
	}
	authService, err := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return nil, err
	}
	return middleware.NewAuthMiddleware(authService), nil
}

func newServer(cfg *config.Config, store db.WorkshopStore, publisher events.Publisher, authMiddleware *middleware.AuthMiddleware) *http.Server {
	router := handlers.NewRouter(handlers.RouterConfig{
		Store:     store,
		Publisher: publisher,
		Auth:      authMiddleware,
		RateLimit: middleware.NewRateLimitMiddleware(cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindowSeconds)*time.Second, cfg.TrustProxyHeaders),
	})
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg.Store)
	if err != nil {
		log.WithError(err).WithField("backend", cfg.Store.Backend).Fatal("Failed to connect to store")
	}
	log.WithField("backend", cfg.Store.Backend).Info("Connected to store")

	publisher, err := newPublisher(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MQTT broker")
	}

	authMiddleware, err := newAuthMiddleware(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialise auth")
	}

	srv := newServer(cfg, store, publisher, authMiddleware)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := publisher.Close(); err != nil {
		log.WithError(err).Warn("Failed to close publisher")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to close store")
	}
}
