package dto

import (
	"tour-booking-service/internal/model"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type ConfirmationEmailResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// CreateTourRequest creates an active tour unless active is false.
type CreateTourRequest struct {
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      *bool           `json:"active"`
}

type TourResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Active      bool   `json:"active"`
}

func PedagogicalTourResponse(t *model.PedagogicalTour) *TourResponse {
	return &TourResponse{
		ID:          t.ID,
		Kind:        "pedagogical",
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Price:       t.Price.StringFixed(2),
		Active:      t.Active,
	}
}

func ConventionalTourResponse(t *model.ConventionalTour) *TourResponse {
	return &TourResponse{
		ID:          t.ID,
		Kind:        "conventional",
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Price:       t.Price.StringFixed(2),
		Active:      t.Active,
	}
}
