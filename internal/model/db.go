package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

type Customer struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;index"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// PedagogicalTour is a school trip sold per student.
type PedagogicalTour struct {
	ID          string          `gorm:"primaryKey;size:36;not null"`
	Title       string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active      bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *PedagogicalTour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ConventionalTour is a regular tourism package sold per seat.
type ConventionalTour struct {
	ID          string          `gorm:"primaryKey;size:36;not null"`
	Title       string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active      bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *ConventionalTour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// FinancialResponsible is the billing contact of an order. Stored as JSON
// on the order row, every field is optional.
type FinancialResponsible struct {
	Name       string `json:"nome,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"telefone,omitempty"`
	Street     string `json:"endereco,omitempty"`
	Number     string `json:"numero,omitempty"`
	Complement string `json:"complemento,omitempty"`
	City       string `json:"cidade,omitempty"`
	State      string `json:"estado,omitempty"`
	PostalCode string `json:"cep,omitempty"`
}

type Order struct {
	ID         string    `gorm:"primaryKey;size:36;not null"`
	CustomerID string    `gorm:"size:36;index;not null"`
	Customer   *Customer `gorm:"foreignKey:CustomerID"`

	// exactly one of the two tour references is set
	PedagogicalTourID  *string           `gorm:"size:36;index"`
	PedagogicalTour    *PedagogicalTour  `gorm:"foreignKey:PedagogicalTourID"`
	ConventionalTourID *string           `gorm:"size:36;index"`
	ConventionalTour   *ConventionalTour `gorm:"foreignKey:ConventionalTourID"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	Status        OrderStatus     `gorm:"size:32;index;not null"`
	Quantity      int             `gorm:"not null"`
	UnitValue     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalValue    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"size:32"` // pix, cartao, boleto, CREDIT_CARD, BOLETO
	Notes         string          `gorm:"type:text"`

	ConfirmationEmailSent bool                  `gorm:"not null;default:false"`
	FinancialResponsible  *FinancialResponsible `gorm:"serializer:json"`

	GatewayPaymentID string `gorm:"size:64;index"` // asaas payment id
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

// OrderItem is one participant of an order.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID string `gorm:"size:36;index;not null"`

	ParticipantName string `gorm:"size:255;not null"`
	BirthDate       *time.Time
	CPF             string `gorm:"size:14"`
	RG              string `gorm:"size:20"`
	Grade           string `gorm:"size:64"` // serie/ano
	Class           string `gorm:"size:64"` // turma
	CareNotes       string `gorm:"type:text"` // alergias/cuidados

	CreatedAt time.Time
}

type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;uniqueIndex;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}
