package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"tour-booking-service/internal/client"
	"tour-booking-service/internal/model"
	"tour-booking-service/internal/repository"
)

var ErrInvalidWebhookToken = errors.New("invalid webhook token")

type PaymentService interface {
	HandleAsaasWebhook(ctx context.Context, token string, body []byte) error
	// PollPendingPayments runs one poll tick: confirms pending payments with
	// the gateway and retries confirmation e-mails that were not delivered.
	PollPendingPayments(ctx context.Context) error
	RunPoller(ctx context.Context, interval time.Duration)
}

type PollerOptions struct {
	Lookback  time.Duration
	BatchSize int
}

type paymentServiceImpl struct {
	asaasClient      client.AsaasClient
	webhookToken     string
	orderRepo        repository.OrderRepository
	webhookEventRepo repository.WebhookEventRepository
	notifier         NotificationService
	pollerOpts       PollerOptions
	logger           *slog.Logger
	now              func() time.Time
}

func NewPaymentService(
	asaasClient client.AsaasClient,
	webhookToken string,
	orderRepo repository.OrderRepository,
	webhookEventRepo repository.WebhookEventRepository,
	notifier NotificationService,
	pollerOpts PollerOptions,
	logger *slog.Logger,
) PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	if pollerOpts.BatchSize <= 0 {
		pollerOpts.BatchSize = 50
	}
	if pollerOpts.Lookback <= 0 {
		pollerOpts.Lookback = 72 * time.Hour
	}
	return &paymentServiceImpl{
		asaasClient:      asaasClient,
		webhookToken:     webhookToken,
		orderRepo:        orderRepo,
		webhookEventRepo: webhookEventRepo,
		notifier:         notifier,
		pollerOpts:       pollerOpts,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *paymentServiceImpl) HandleAsaasWebhook(ctx context.Context, token string, body []byte) error {
	if s.webhookToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.webhookToken)) != 1 {
		return ErrInvalidWebhookToken
	}

	var event model.AsaasWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	log := s.logger.With("event_id", event.ID, "event_type", event.Event)

	switch event.Event {
	case model.AsaasEventPaymentConfirmed, model.AsaasEventPaymentReceived:
	default:
		log.Debug("ignoring asaas event")
		return nil
	}

	if event.Payment == nil || event.Payment.ID == "" {
		return fmt.Errorf("missing payment in %s event", event.Event)
	}

	if event.ID != "" {
		processed, err := s.webhookEventRepo.Exists(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("check webhook event: %w", err)
		}
		if processed {
			log.Info("asaas event already processed")
			return nil
		}
	}

	orderID, err := s.resolveOrderID(ctx, event.Payment)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			log.Warn("no order for asaas payment", "payment_id", event.Payment.ID)
			return nil
		}
		return err
	}

	if err := s.confirmPayment(ctx, orderID, event.Payment.ID); err != nil {
		return err
	}

	if event.ID != "" {
		if _, err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, event.Event); err != nil {
			return fmt.Errorf("mark webhook event processed: %w", err)
		}
	}

	return nil
}

// resolveOrderID prefers the externalReference we sent to the gateway. An
// order already bound to a different gateway payment is treated as unknown.
func (s *paymentServiceImpl) resolveOrderID(ctx context.Context, payment *model.AsaasPayment) (string, error) {
	if payment.ExternalReference == "" {
		order, err := s.orderRepo.FindByGatewayPaymentID(ctx, payment.ID)
		if err != nil {
			return "", err
		}
		return order.ID, nil
	}

	order, err := s.orderRepo.FindByID(ctx, payment.ExternalReference)
	if err != nil {
		return "", err
	}
	if order.GatewayPaymentID != "" && order.GatewayPaymentID != payment.ID {
		s.logger.Warn("asaas payment does not match order",
			"order_id", order.ID,
			"order_payment_id", order.GatewayPaymentID,
			"payment_id", payment.ID,
		)
		return "", repository.ErrOrderNotFound
	}
	return order.ID, nil
}

// confirmPayment marks the order paid and triggers the confirmation e-mail.
// An order that was already paid is notified again, which is how earlier
// failed deliveries get retried. Cancelled or refunded orders are left alone.
func (s *paymentServiceImpl) confirmPayment(ctx context.Context, orderID, paymentID string) error {
	changed, err := s.orderRepo.MarkPaid(ctx, orderID, paymentID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	if changed {
		s.logger.Info("order paid", "order_id", orderID, "payment_id", paymentID)
	} else {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		if order.Status != model.OrderStatusPaid {
			s.logger.Warn("payment confirmed for order that is not payable",
				"order_id", orderID,
				"payment_id", paymentID,
				"status", order.Status,
			)
			return nil
		}
	}

	s.notifier.SendOrderConfirmation(context.WithoutCancel(ctx), orderID)
	return nil
}

func (s *paymentServiceImpl) PollPendingPayments(ctx context.Context) error {
	since := s.now().Add(-s.pollerOpts.Lookback)
	attempted := make(map[string]bool)

	pending, err := s.orderRepo.FindPendingWithPayment(ctx, since, s.pollerOpts.BatchSize)
	if err != nil {
		return fmt.Errorf("find pending orders: %w", err)
	}

	for _, order := range pending {
		payment, err := s.asaasClient.GetPayment(ctx, order.GatewayPaymentID)
		if err != nil {
			s.logger.Warn("poll asaas payment", "order_id", order.ID, "payment_id", order.GatewayPaymentID, "error", err)
			continue
		}
		if !payment.IsConfirmed() {
			continue
		}

		if err := s.confirmPayment(ctx, order.ID, payment.ID); err != nil {
			s.logger.Error("confirm polled payment", "order_id", order.ID, "error", err)
			continue
		}
		attempted[order.ID] = true
	}

	unnotified, err := s.orderRepo.FindPaidUnnotified(ctx, since, s.pollerOpts.BatchSize)
	if err != nil {
		return fmt.Errorf("find unnotified orders: %w", err)
	}

	for _, order := range unnotified {
		if attempted[order.ID] {
			continue
		}
		s.notifier.SendOrderConfirmation(ctx, order.ID)
	}

	return nil
}

func (s *paymentServiceImpl) RunPoller(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.PollPendingPayments(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("payment poll tick", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
