package cli

import (
	"fmt"
	"log/slog"
	"tour-booking-service/internal/client"
	"tour-booking-service/internal/config"
	"tour-booking-service/internal/repository"
	"tour-booking-service/internal/service"

	"gorm.io/gorm"
)

// app is the wired object graph shared by the subcommands.
type app struct {
	db            *gorm.DB
	notifications service.NotificationService
	payments      service.PaymentService
	catalog       service.CatalogService
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	db, err := client.InitDatabase(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	return wireApp(db, cfg, client.NewSMTPMailer(&cfg.SMTP), client.NewAsaasClient(&cfg.Asaas), logger), nil
}

func wireApp(db *gorm.DB, cfg *config.Config, mailer client.Mailer, asaasClient client.AsaasClient, logger *slog.Logger) *app {
	orderRepo := repository.NewOrderRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	tourRepo := repository.NewTourRepository(db)

	notifications := service.NewNotificationService(orderRepo, mailer, cfg.BaseURL, logger)

	payments := service.NewPaymentService(
		asaasClient,
		cfg.Asaas.WebhookToken,
		orderRepo,
		webhookEventRepo,
		notifications,
		service.PollerOptions{
			Lookback:  cfg.Poller.Lookback,
			BatchSize: cfg.Poller.BatchSize,
		},
		logger,
	)

	return &app{
		db:            db,
		notifications: notifications,
		payments:      payments,
		catalog:       service.NewCatalogService(tourRepo),
	}
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}
