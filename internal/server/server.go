package server

import (
	"context"
	"log/slog"
	"net/http"
	"tour-booking-service/internal/handler"
	authmw "tour-booking-service/internal/middleware"
	"tour-booking-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	webhookHandler *handler.WebhookHandler
	tourHandler    *handler.TourHandler
	orderHandler   *handler.OrderHandler
	jwtSecret      string
}

func NewServer(
	paymentService service.PaymentService,
	catalogService service.CatalogService,
	notificationService service.NotificationService,
	jwtSecret string,
	logger *slog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		webhookHandler: handler.NewWebhookHandler(paymentService, logger),
		tourHandler:    handler.NewTourHandler(catalogService, logger),
		orderHandler:   handler.NewOrderHandler(notificationService, logger),
		jwtSecret:      jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	tours := api.Group("/tours")
	tours.GET("/pedagogical", s.tourHandler.ListPedagogical)
	tours.GET("/conventional", s.tourHandler.ListConventional)
	tours.GET("/:kind/:slug", s.tourHandler.GetBySlug)

	// -------- gateway webhooks --------
	api.POST("/webhooks/asaas", s.webhookHandler.AsaasWebhook)

	// -------- admin --------
	admin := api.Group("/admin", authmw.AdminAuth(s.jwtSecret))
	admin.POST("/orders/:id/confirmation-email", s.orderHandler.ResendConfirmation)
	admin.POST("/tours/:kind", s.tourHandler.CreateTour)
	admin.DELETE("/tours/:kind/:id", s.tourHandler.DeactivateTour)
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
