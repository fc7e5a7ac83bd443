package repository

import (
	"context"
	"errors"
	"time"
	"tour-booking-service/internal/model"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	FindWithRelations(ctx context.Context, orderID string) (*model.Order, error)
	FindByGatewayPaymentID(ctx context.Context, paymentID string) (*model.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error)
	FindPendingWithPayment(ctx context.Context, since time.Time, limit int) ([]*model.Order, error)
	FindPaidUnnotified(ctx context.Context, since time.Time, limit int) ([]*model.Order, error)

	// AcquireConfirmationLock flips confirmation_email_sent from false to
	// true in a single conditional update. Only the caller that changed the
	// row gets true.
	AcquireConfirmationLock(ctx context.Context, orderID string) (bool, error)
	ReleaseConfirmationLock(ctx context.Context, orderID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindWithRelations(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("PedagogicalTour").
		Preload("ConventionalTour").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByGatewayPaymentID(ctx context.Context, paymentID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("gateway_payment_id = ?", paymentID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

// MarkPaid moves a pending order to PAID. It reports false when the order
// was already paid (or not pending), so webhook and poller can both call it.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error) {
	updates := map[string]interface{}{
		"status":     model.OrderStatusPaid,
		"paid_at":    time.Now(),
		"updated_at": time.Now(),
	}
	if paymentID != "" {
		updates["gateway_payment_id"] = paymentID
	}

	result := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusPending).
		Updates(updates)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *orderRepoImpl) FindPendingWithPayment(ctx context.Context, since time.Time, limit int) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where(`
			status = ?
			AND gateway_payment_id <> ''
			AND created_at >= ?
		`,
			model.OrderStatusPending,
			since,
		).
		Order("created_at ASC").
		Limit(limit).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindPaidUnnotified(ctx context.Context, since time.Time, limit int) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where(`
			status = ?
			AND confirmation_email_sent = ?
			AND created_at >= ?
		`,
			model.OrderStatusPaid,
			false,
			since,
		).
		Order("created_at ASC").
		Limit(limit).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) AcquireConfirmationLock(ctx context.Context, orderID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND confirmation_email_sent = ?", orderID, false).
		Update("confirmation_email_sent", true)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *orderRepoImpl) ReleaseConfirmationLock(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("confirmation_email_sent", false).
		Error
}
