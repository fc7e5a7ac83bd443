package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"tour-booking-service/internal/client"
	"tour-booking-service/internal/emailtemplate"
	"tour-booking-service/internal/model"
	"tour-booking-service/internal/repository"

	"github.com/shopspring/decimal"
)

const fallbackProductName = "Passeio"

// Outcome is how a confirmation attempt ended. Only OutcomeDelivered leaves
// the order's confirmation flag set.
type Outcome string

const (
	OutcomeDelivered      Outcome = "delivered"
	OutcomeAlreadySent    Outcome = "already_sent"
	OutcomeLockError      Outcome = "lock_error"
	OutcomeOrderNotFound  Outcome = "order_not_found"
	OutcomeNoRecipient    Outcome = "no_recipient"
	OutcomeDeliveryFailed Outcome = "delivery_failed"
)

type NotificationService interface {
	// SendOrderConfirmation e-mails the order confirmation at most once.
	// It never fails: every problem is logged and the confirmation flag is
	// reset so a later trigger can retry.
	SendOrderConfirmation(ctx context.Context, orderID string)
}

type notificationServiceImpl struct {
	orderRepo repository.OrderRepository
	mailer    client.Mailer
	baseURL   string
	logger    *slog.Logger
	now       func() time.Time
}

func NewNotificationService(
	orderRepo repository.OrderRepository,
	mailer client.Mailer,
	baseURL string,
	logger *slog.Logger,
) NotificationService {
	return newNotificationService(orderRepo, mailer, baseURL, logger)
}

func newNotificationService(
	orderRepo repository.OrderRepository,
	mailer client.Mailer,
	baseURL string,
	logger *slog.Logger,
) *notificationServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationServiceImpl{
		orderRepo: orderRepo,
		mailer:    mailer,
		baseURL:   baseURL,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *notificationServiceImpl) SendOrderConfirmation(ctx context.Context, orderID string) {
	s.sendOrderConfirmation(ctx, orderID)
}

func (s *notificationServiceImpl) sendOrderConfirmation(ctx context.Context, orderID string) (outcome Outcome) {
	log := s.logger.With("order_id", orderID)

	acquired, err := s.orderRepo.AcquireConfirmationLock(ctx, orderID)
	if err != nil {
		log.Error("acquire confirmation lock", "stage", "lock", "error", err)
		return OutcomeLockError
	}
	if !acquired {
		log.Debug("confirmation email already sent or in progress")
		return OutcomeAlreadySent
	}

	a := &attempt{stage: "load"}

	// From here on the flag is true; every exit but a delivery must reset it.
	defer func() {
		if r := recover(); r != nil {
			log.Error("confirmation email panicked",
				"stage", a.stage,
				"recipient", a.recipient,
				"error", fmt.Sprint(r),
			)
			outcome = OutcomeDeliveryFailed
		}
		if outcome != OutcomeDelivered {
			s.releaseLock(ctx, log, orderID)
		}
	}()

	return s.deliver(ctx, log, orderID, a)
}

type attempt struct {
	stage     string
	recipient string
}

func (s *notificationServiceImpl) deliver(ctx context.Context, log *slog.Logger, orderID string, a *attempt) Outcome {
	order, err := s.orderRepo.FindWithRelations(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			log.Warn("order not found for confirmation email", "stage", a.stage)
			return OutcomeOrderNotFound
		}
		log.Error("load order for confirmation email", "stage", a.stage, "error", err)
		return OutcomeDeliveryFailed
	}

	a.stage = "recipient"
	a.recipient = resolveRecipient(order)
	if a.recipient == "" {
		log.Error("order has no recipient e-mail", "stage", a.stage)
		return OutcomeNoRecipient
	}

	a.stage = "render"
	data := buildConfirmationData(order)
	html, text, err := emailtemplate.Render(data, emailtemplate.Options{
		BaseURL: s.baseURL,
		Year:    s.now().Year(),
	})
	if err != nil {
		log.Error("render confirmation email", "stage", a.stage, "recipient", a.recipient, "error", err)
		return OutcomeDeliveryFailed
	}

	a.stage = "deliver"
	result := s.mailer.Send(ctx, &client.Email{
		To:      a.recipient,
		Subject: emailtemplate.Subject(order.ID),
		HTML:    html,
		Text:    text,
	})
	if result == nil || !result.Success {
		reason := "no result from mailer"
		if result != nil {
			reason = result.Error
		}
		log.Error("confirmation email delivery failed", "stage", a.stage, "recipient", a.recipient, "error", reason)
		return OutcomeDeliveryFailed
	}

	log.Info("confirmation email sent", "recipient", a.recipient, "message_id", result.MessageID)
	return OutcomeDelivered
}

func (s *notificationServiceImpl) releaseLock(ctx context.Context, log *slog.Logger, orderID string) {
	// the trigger's request may already be gone
	if err := s.orderRepo.ReleaseConfirmationLock(context.WithoutCancel(ctx), orderID); err != nil {
		log.Error("release confirmation lock", "stage", "release", "error", err)
	}
}

// resolveRecipient prefers the financial responsible's e-mail over the
// customer's.
func resolveRecipient(order *model.Order) string {
	if fr := order.FinancialResponsible; fr != nil {
		if email := strings.TrimSpace(fr.Email); email != "" {
			return email
		}
	}
	if order.Customer != nil {
		return strings.TrimSpace(order.Customer.Email)
	}
	return ""
}

func productName(order *model.Order) string {
	switch {
	case order.PedagogicalTour != nil && order.PedagogicalTour.Title != "":
		return order.PedagogicalTour.Title
	case order.ConventionalTour != nil && order.ConventionalTour.Title != "":
		return order.ConventionalTour.Title
	default:
		return fallbackProductName
	}
}

func buildConfirmationData(order *model.Order) *emailtemplate.ConfirmationData {
	displayName := ""
	if order.Customer != nil {
		displayName = order.Customer.Name
	}
	if fr := order.FinancialResponsible; fr != nil && fr.Name != "" {
		displayName = fr.Name
	}

	total := order.TotalValue
	if total.IsZero() {
		total = order.UnitValue.Mul(decimal.NewFromInt(int64(order.Quantity)))
	}

	participants := make([]emailtemplate.Participant, 0, len(order.Items))
	for _, item := range order.Items {
		document := item.CPF
		if document == "" {
			document = item.RG
		}
		participants = append(participants, emailtemplate.Participant{
			Name:      item.ParticipantName,
			BirthDate: item.BirthDate,
			Document:  document,
			Grade:     item.Grade,
			Class:     item.Class,
			CareNotes: item.CareNotes,
		})
	}

	data := &emailtemplate.ConfirmationData{
		OrderID:       order.ID,
		OrderDate:     order.CreatedAt,
		CustomerName:  displayName,
		ProductName:   productName(order),
		Quantity:      order.Quantity,
		UnitPrice:     order.UnitValue,
		TotalPrice:    total,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		Participants:  participants,
	}

	if fr := order.FinancialResponsible; fr != nil {
		data.Billing = &emailtemplate.BillingAddress{
			Name:       fr.Name,
			Street:     fr.Street,
			Number:     fr.Number,
			Complement: fr.Complement,
			City:       fr.City,
			State:      fr.State,
			PostalCode: fr.PostalCode,
			Phone:      fr.Phone,
			Email:      fr.Email,
		}
	}

	return data
}
