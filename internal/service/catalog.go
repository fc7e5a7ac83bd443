package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tour-booking-service/internal/model"
	"tour-booking-service/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	TourKindPedagogical  = "pedagogical"
	TourKindConventional = "conventional"
)

var (
	ErrUnknownTourKind = errors.New("unknown tour kind")
	ErrInvalidTour     = errors.New("invalid tour")
)

// TourInput is the admin-editable part of a tour. An empty Slug is derived
// from the title.
type TourInput struct {
	Title       string
	Slug        string
	Description string
	Price       decimal.Decimal
	Active      bool
}

type CatalogService interface {
	ListPedagogical(ctx context.Context) ([]*model.PedagogicalTour, error)
	ListConventional(ctx context.Context) ([]*model.ConventionalTour, error)
	// GetBySlug returns a *model.PedagogicalTour or *model.ConventionalTour.
	GetBySlug(ctx context.Context, kind, slug string) (any, error)
	CreateTour(ctx context.Context, kind string, in TourInput) (any, error)
	DeactivateTour(ctx context.Context, kind, id string) error
}

type catalogServiceImpl struct {
	tourRepo repository.TourRepository
}

func NewCatalogService(tourRepo repository.TourRepository) CatalogService {
	return &catalogServiceImpl{
		tourRepo: tourRepo,
	}
}

func (s *catalogServiceImpl) ListPedagogical(ctx context.Context) ([]*model.PedagogicalTour, error) {
	return s.tourRepo.ListPedagogical(ctx)
}

func (s *catalogServiceImpl) ListConventional(ctx context.Context) ([]*model.ConventionalTour, error) {
	return s.tourRepo.ListConventional(ctx)
}

func (s *catalogServiceImpl) GetBySlug(ctx context.Context, kind, slug string) (any, error) {
	switch kind {
	case TourKindPedagogical:
		return s.tourRepo.FindPedagogicalBySlug(ctx, slug)
	case TourKindConventional:
		return s.tourRepo.FindConventionalBySlug(ctx, slug)
	default:
		return nil, ErrUnknownTourKind
	}
}

func (s *catalogServiceImpl) CreateTour(ctx context.Context, kind string, in TourInput) (any, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTour)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidTour)
	}

	switch kind {
	case TourKindPedagogical:
		tour := &model.PedagogicalTour{
			Title:       in.Title,
			Slug:        in.Slug,
			Description: in.Description,
			Price:       in.Price,
			Active:      in.Active,
		}
		if err := s.tourRepo.CreatePedagogical(ctx, tour); err != nil {
			return nil, err
		}
		return tour, nil
	case TourKindConventional:
		tour := &model.ConventionalTour{
			Title:       in.Title,
			Slug:        in.Slug,
			Description: in.Description,
			Price:       in.Price,
			Active:      in.Active,
		}
		if err := s.tourRepo.CreateConventional(ctx, tour); err != nil {
			return nil, err
		}
		return tour, nil
	default:
		return nil, ErrUnknownTourKind
	}
}

func (s *catalogServiceImpl) DeactivateTour(ctx context.Context, kind, id string) error {
	switch kind {
	case TourKindPedagogical:
		return s.tourRepo.DeactivatePedagogical(ctx, id)
	case TourKindConventional:
		return s.tourRepo.DeactivateConventional(ctx, id)
	default:
		return ErrUnknownTourKind
	}
}
