package emailtemplate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var paymentMethodLabels = map[string]string{
	"pix":         "PIX",
	"PIX":         "PIX",
	"cartao":      "Cartão de Crédito",
	"CREDIT_CARD": "Cartão de Crédito",
	"boleto":      "Boleto Bancário",
	"BOLETO":      "Boleto Bancário",
}

// FormatMoney renders v as "R$ 1234,50".
func FormatMoney(v decimal.Decimal) string {
	return "R$ " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// FormatDate renders t as "5 de março de 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// PaymentMethodLabel maps a gateway payment code to its display name.
// Unknown codes are returned unchanged.
func PaymentMethodLabel(code string) string {
	if label, ok := paymentMethodLabels[code]; ok {
		return label
	}
	return code
}

// Subject is the e-mail subject for an order confirmation.
func Subject(orderID string) string {
	return "Confirmação de Inscrição - Pedido " + shortID(orderID)
}
