package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"tour-booking-service/internal/dto"
	"tour-booking-service/internal/model"
	"tour-booking-service/internal/repository"
	"tour-booking-service/internal/service"

	"github.com/labstack/echo/v4"
)

type TourHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

func NewTourHandler(catalogService service.CatalogService, logger *slog.Logger) *TourHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TourHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *TourHandler) ListPedagogical(c echo.Context) error {
	tours, err := h.catalogService.ListPedagogical(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]*dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		resp = append(resp, dto.PedagogicalTourResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TourHandler) ListConventional(c echo.Context) error {
	tours, err := h.catalogService.ListConventional(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]*dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		resp = append(resp, dto.ConventionalTourResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TourHandler) GetBySlug(c echo.Context) error {
	tour, err := h.catalogService.GetBySlug(c.Request().Context(), c.Param("kind"), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) || errors.Is(err, service.ErrUnknownTourKind) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "tour not found"})
		}
		return err
	}

	return tourJSON(c, http.StatusOK, tour)
}

func (h *TourHandler) CreateTour(c echo.Context) error {
	var req dto.CreateTourRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	kind := c.Param("kind")
	tour, err := h.catalogService.CreateTour(c.Request().Context(), kind, service.TourInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Active:      active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTourKind):
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrInvalidTour), errors.Is(err, repository.ErrTourSlugEmpty):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repository.ErrTourSlugTaken):
			return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		}
		return err
	}

	h.logger.Info("tour created", "kind", kind, "title", req.Title, "admin", adminSubject(c))
	return tourJSON(c, http.StatusCreated, tour)
}

func (h *TourHandler) DeactivateTour(c echo.Context) error {
	kind, id := c.Param("kind"), c.Param("id")

	err := h.catalogService.DeactivateTour(c.Request().Context(), kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) || errors.Is(err, service.ErrUnknownTourKind) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "tour not found"})
		}
		return err
	}

	h.logger.Info("tour deactivated", "kind", kind, "tour_id", id, "admin", adminSubject(c))
	return c.NoContent(http.StatusNoContent)
}

func tourJSON(c echo.Context, status int, tour any) error {
	switch t := tour.(type) {
	case *model.PedagogicalTour:
		return c.JSON(status, dto.PedagogicalTourResponse(t))
	case *model.ConventionalTour:
		return c.JSON(status, dto.ConventionalTourResponse(t))
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "unexpected tour type")
	}
}
