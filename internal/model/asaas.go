package model

import "github.com/shopspring/decimal"

const (
	AsaasEventPaymentConfirmed = "PAYMENT_CONFIRMED"
	AsaasEventPaymentReceived  = "PAYMENT_RECEIVED"
)

const (
	AsaasStatusPending   = "PENDING"
	AsaasStatusConfirmed = "CONFIRMED"
	AsaasStatusReceived  = "RECEIVED"
	AsaasStatusOverdue   = "OVERDUE"
)

type AsaasPayment struct {
	ID                string          `json:"id"`
	Customer          string          `json:"customer"`
	Status            string          `json:"status"`
	BillingType       string          `json:"billingType"` // PIX, BOLETO, CREDIT_CARD
	Value             decimal.Decimal `json:"value"`
	ExternalReference string          `json:"externalReference"` // our order id
	ConfirmedDate     string          `json:"confirmedDate"`
	PaymentDate       string          `json:"paymentDate"`
}

// IsConfirmed reports whether the payment reached a paid state.
func (p *AsaasPayment) IsConfirmed() bool {
	return p.Status == AsaasStatusConfirmed || p.Status == AsaasStatusReceived
}

type AsaasWebhookEvent struct {
	ID          string        `json:"id"`
	Event       string        `json:"event"`
	DateCreated string        `json:"dateCreated"`
	Payment     *AsaasPayment `json:"payment"`
}
