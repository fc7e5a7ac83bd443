package repository

import (
	"context"
	"errors"
	"tour-booking-service/internal/model"
	"tour-booking-service/internal/slug"

	"gorm.io/gorm"
)

var (
	ErrTourNotFound  = errors.New("tour not found")
	ErrTourSlugTaken = errors.New("tour slug already in use")
	ErrTourSlugEmpty = errors.New("tour slug is empty")
)

type TourRepository interface {
	CreatePedagogical(ctx context.Context, tour *model.PedagogicalTour) error
	CreateConventional(ctx context.Context, tour *model.ConventionalTour) error
	ListPedagogical(ctx context.Context) ([]*model.PedagogicalTour, error)
	ListConventional(ctx context.Context) ([]*model.ConventionalTour, error)
	FindPedagogicalBySlug(ctx context.Context, slug string) (*model.PedagogicalTour, error)
	FindConventionalBySlug(ctx context.Context, slug string) (*model.ConventionalTour, error)
	DeactivatePedagogical(ctx context.Context, id string) error
	DeactivateConventional(ctx context.Context, id string) error
}

type tourRepoImpl struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepoImpl{
		db: db,
	}
}

// CreatePedagogical derives the slug from the title unless one is set.
// Inactive tours keep their slug reserved.
func (r *tourRepoImpl) CreatePedagogical(ctx context.Context, tour *model.PedagogicalTour) error {
	s, err := r.reserveSlug(ctx, &model.PedagogicalTour{}, tour.Slug, tour.Title)
	if err != nil {
		return err
	}
	tour.Slug = s
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepoImpl) CreateConventional(ctx context.Context, tour *model.ConventionalTour) error {
	s, err := r.reserveSlug(ctx, &model.ConventionalTour{}, tour.Slug, tour.Title)
	if err != nil {
		return err
	}
	tour.Slug = s
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepoImpl) reserveSlug(ctx context.Context, table interface{}, given, title string) (string, error) {
	s := slug.Make(given)
	if s == "" {
		s = slug.Make(title)
	}
	if s == "" {
		return "", ErrTourSlugEmpty
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(table).Where("slug = ?", s).Count(&n).Error; err != nil {
		return "", err
	}
	if n > 0 {
		return "", ErrTourSlugTaken
	}
	return s, nil
}

func (r *tourRepoImpl) DeactivatePedagogical(ctx context.Context, id string) error {
	return r.deactivate(ctx, &model.PedagogicalTour{}, id)
}

func (r *tourRepoImpl) DeactivateConventional(ctx context.Context, id string) error {
	return r.deactivate(ctx, &model.ConventionalTour{}, id)
}

func (r *tourRepoImpl) deactivate(ctx context.Context, table interface{}, id string) error {
	result := r.db.WithContext(ctx).
		Model(table).
		Where("id = ?", id).
		Update("active", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTourNotFound
	}
	return nil
}

func (r *tourRepoImpl) ListPedagogical(ctx context.Context) ([]*model.PedagogicalTour, error) {
	var tours []*model.PedagogicalTour
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("title ASC").
		Find(&tours).Error

	if err != nil {
		return nil, err
	}

	return tours, nil
}

func (r *tourRepoImpl) ListConventional(ctx context.Context) ([]*model.ConventionalTour, error) {
	var tours []*model.ConventionalTour
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("title ASC").
		Find(&tours).Error

	if err != nil {
		return nil, err
	}

	return tours, nil
}

func (r *tourRepoImpl) FindPedagogicalBySlug(ctx context.Context, slug string) (*model.PedagogicalTour, error) {
	var tour model.PedagogicalTour
	err := r.db.WithContext(ctx).
		Where("slug = ? AND active = ?", slug, true).
		First(&tour).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	return &tour, nil
}

func (r *tourRepoImpl) FindConventionalBySlug(ctx context.Context, slug string) (*model.ConventionalTour, error) {
	var tour model.ConventionalTour
	err := r.db.WithContext(ctx).
		Where("slug = ? AND active = ?", slug, true).
		First(&tour).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	return &tour, nil
}
