package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"tour-booking-service/internal/dto"
	"tour-booking-service/internal/service"

	"github.com/labstack/echo/v4"
)

const asaasTokenHeader = "asaas-access-token"

// 1 MiB is far above any asaas event
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	paymentService service.PaymentService
	logger         *slog.Logger
}

func NewWebhookHandler(paymentService service.PaymentService, logger *slog.Logger) *WebhookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *WebhookHandler) AsaasWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read request body"})
	}

	token := c.Request().Header.Get(asaasTokenHeader)
	if err := h.paymentService.HandleAsaasWebhook(ctx, token, body); err != nil {
		if errors.Is(err, service.ErrInvalidWebhookToken) {
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
		}
		h.logger.Error("asaas webhook", "error", err)
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.WebhookAck{Received: true})
}
