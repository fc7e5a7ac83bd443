// Package emailtemplate renders the order confirmation e-mail.
//
// Rendering is pure: the same ConfirmationData and Options always produce
// the same bodies. The copyright year and the server address used for the
// logo come from Options, never from the environment.
package emailtemplate

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/shopspring/decimal"
)

type Participant struct {
	Name      string
	BirthDate *time.Time
	Document  string
	Grade     string // serie/ano
	Class     string // turma
	CareNotes string // alergias/cuidados
}

// BillingAddress is filled only when the order has a financial responsible.
type BillingAddress struct {
	Name       string
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	PostalCode string
	Phone      string
	Email      string
}

type ConfirmationData struct {
	OrderID       string
	OrderDate     time.Time
	CustomerName  string
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	PaymentMethod string
	Notes         string
	Participants  []Participant
	Billing       *BillingAddress
}

type Options struct {
	BaseURL string
	Year    int
}

type view struct {
	*ConfirmationData
	ShortID string
	LogoURL string
	Year    int
}

var funcs = map[string]any{
	"money":   FormatMoney,
	"date":    FormatDate,
	"payment": PaymentMethodLabel,
	"birth": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return FormatDate(*t)
	},
	"cityState": func(b *BillingAddress) string {
		switch {
		case b.City != "" && b.State != "":
			return b.City + " - " + b.State
		case b.City != "":
			return b.City
		default:
			return b.State
		}
	},
}

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("html").Funcs(funcs).Parse(htmlBody))
	textTmpl = texttemplate.Must(texttemplate.New("text").Funcs(funcs).Parse(textBody))
)

// Render returns the HTML body and its plain-text alternative.
func Render(data *ConfirmationData, opts Options) (string, string, error) {
	if data == nil {
		return "", "", fmt.Errorf("render confirmation: nil data")
	}

	v := &view{
		ConfirmationData: data,
		ShortID:          shortID(data.OrderID),
		LogoURL:          strings.TrimRight(opts.BaseURL, "/") + "/images/logo.png",
		Year:             opts.Year,
	}

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, v); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}

	var text bytes.Buffer
	if err := textTmpl.Execute(&text, v); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}

	return html.String(), text.String(), nil
}

func shortID(orderID string) string {
	if r := []rune(orderID); len(r) > 8 {
		return string(r[:8])
	}
	return orderID
}
