// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"
	"tour-booking-service/internal/client"
	"tour-booking-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a migrated SQLite database living in t.TempDir().
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, client.Migrate(db))
	return db
}

// OrderFixture describes an order to seed. Zero values get sensible defaults.
type OrderFixture struct {
	CustomerName         string
	CustomerEmail        string
	TourTitle            string
	Conventional         bool
	Quantity             int
	UnitValue            string
	TotalValue           string
	PaymentMethod        string
	Notes                string
	GatewayPaymentID     string
	Status               model.OrderStatus
	EmailSent            bool
	FinancialResponsible *model.FinancialResponsible
	Items                []model.OrderItem
	CreatedAt            time.Time
}

// SeedOrder inserts a customer, a tour and an order built from f.
func SeedOrder(t *testing.T, db *gorm.DB, f OrderFixture) *model.Order {
	t.Helper()
	ctx := context.Background()

	if f.CustomerName == "" {
		f.CustomerName = "Maria Silva"
	}
	if f.TourTitle == "" {
		f.TourTitle = "Passeio ao Museu do Ipiranga"
	}
	if f.Quantity == 0 {
		f.Quantity = 1
	}
	if f.UnitValue == "" {
		f.UnitValue = "150.00"
	}
	if f.TotalValue == "" {
		f.TotalValue = f.UnitValue
	}
	if f.PaymentMethod == "" {
		f.PaymentMethod = "pix"
	}

	customer := &model.Customer{Name: f.CustomerName, Email: f.CustomerEmail, Phone: "11999990000"}
	require.NoError(t, db.WithContext(ctx).Create(customer).Error)

	order := &model.Order{
		CustomerID:           customer.ID,
		Status:               f.Status,
		Quantity:             f.Quantity,
		UnitValue:            decimal.RequireFromString(f.UnitValue),
		TotalValue:           decimal.RequireFromString(f.TotalValue),
		PaymentMethod:        f.PaymentMethod,
		Notes:                f.Notes,
		GatewayPaymentID:     f.GatewayPaymentID,
		FinancialResponsible: f.FinancialResponsible,
		Items:                f.Items,
		CreatedAt:            f.CreatedAt,
	}

	if f.Conventional {
		tour := &model.ConventionalTour{Title: f.TourTitle, Slug: "conv-" + customer.ID, Price: order.UnitValue, Active: true}
		require.NoError(t, db.WithContext(ctx).Create(tour).Error)
		order.ConventionalTourID = &tour.ID
	} else {
		tour := &model.PedagogicalTour{Title: f.TourTitle, Slug: "ped-" + customer.ID, Price: order.UnitValue, Active: true}
		require.NoError(t, db.WithContext(ctx).Create(tour).Error)
		order.PedagogicalTourID = &tour.ID
	}

	require.NoError(t, db.WithContext(ctx).Create(order).Error)

	if f.EmailSent {
		require.NoError(t, db.WithContext(ctx).Model(order).Update("confirmation_email_sent", true).Error)
		order.ConfirmationEmailSent = true
	}

	return order
}

// EmailSent reads the confirmation flag straight from the table.
func EmailSent(t *testing.T, db *gorm.DB, orderID string) bool {
	t.Helper()

	var order model.Order
	require.NoError(t, db.Select("confirmation_email_sent").Where("id = ?", orderID).First(&order).Error)
	return order.ConfirmationEmailSent
}
