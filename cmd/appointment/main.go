package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	appthandler "github.com/hduce/appointment-notify/internal/api/handlers/appointment"
	"github.com/hduce/appointment-notify/internal/api/router"
	"github.com/hduce/appointment-notify/internal/api/server"
	"github.com/hduce/appointment-notify/internal/config"
	"github.com/hduce/appointment-notify/internal/notifyclient"
	"github.com/hduce/appointment-notify/internal/rabbitmq"
	apptrepo "github.com/hduce/appointment-notify/internal/repository/appointment"
	apptsvc "github.com/hduce/appointment-notify/internal/service/appointment"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := dbpg.New(cfg.Database.Appointments.DSN(), nil, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	publisher := rabbitmq.NewPublisher(cfg.RabbitMQ, cfg.Retry)
	fallback := notifyclient.NewClient(cfg.Notify.BaseURL, cfg.Notify.Timeout)

	repo := apptrepo.NewRepository(db)
	service := apptsvc.NewService(repo, publisher, fallback)

	handler := appthandler.NewHandler(service, val)
	r := router.NewAppointment(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if err := publisher.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close publisher")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close DB: %v", err)
	}
}
