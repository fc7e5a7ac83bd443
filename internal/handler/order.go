package handler

import (
	"log/slog"
	"net/http"
	"tour-booking-service/internal/dto"
	"tour-booking-service/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	notificationService service.NotificationService
	logger              *slog.Logger
}

func NewOrderHandler(notificationService service.NotificationService, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ResendConfirmation triggers the confirmation e-mail for an order. Delivery
// is best effort, so the response only says the attempt was made.
func (h *OrderHandler) ResendConfirmation(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order id")
	}

	h.logger.Info("admin requested confirmation email", "order_id", orderID, "admin", adminSubject(c))
	h.notificationService.SendOrderConfirmation(c.Request().Context(), orderID)

	return c.JSON(http.StatusAccepted, dto.ConfirmationEmailResponse{
		OrderID: orderID,
		Status:  "attempted",
	})
}
