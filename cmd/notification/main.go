package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/hduce/appointment-notify/internal/api/handlers/notification"
	"github.com/hduce/appointment-notify/internal/api/router"
	"github.com/hduce/appointment-notify/internal/api/server"
	"github.com/hduce/appointment-notify/internal/config"
	"github.com/hduce/appointment-notify/internal/directory"
	"github.com/hduce/appointment-notify/internal/rabbitmq"
	msghandler "github.com/hduce/appointment-notify/internal/rabbitmq/handlers/appointment"
	notifrepo "github.com/hduce/appointment-notify/internal/repository/notification"
	notifsvc "github.com/hduce/appointment-notify/internal/service/notification"
	"github.com/hduce/appointment-notify/pkg/email"
	"github.com/hduce/appointment-notify/pkg/sms"
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

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Read-only node owned by the appointment service, used only for
	// doctor name lookups.
	apptDB, err := dbpg.New(cfg.Database.Appointments.DSN(), nil, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to appointment database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Notify.EmailSimulation,
	)
	smsClient := sms.NewClient(cfg.Notify.SMSGatewayURL, cfg.Notify.SMSSimulation)

	notifiers := map[string]notifsvc.Notifier{
		"email": emailClient,
		"sms":   smsClient,
	}

	repo := notifrepo.NewRepository(db)
	doctors := directory.NewPostgresDirectory(apptDB)
	service := notifsvc.NewService(repo, doctors, notifiers, rdb, cfg.Retry)

	consumer := rabbitmq.NewConsumer(cfg.RabbitMQ, cfg.Retry, msghandler.NewHandler(service))
	go consumer.Run(ctx)

	handler := notifhandler.NewHandler(service, val)
	r := router.NewNotification(handler)
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

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := apptDB.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close appointment DB: %v", err)
	}
}
