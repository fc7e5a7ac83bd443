package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"tour-booking-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsaasGetPayment(t *testing.T) {
	tests := []struct {
		name          string
		handler       func(w http.ResponseWriter, r *http.Request)
		wantStatus    string
		wantErr       bool
		errorContains string
	}{
		{
			name: "Success - confirmed payment",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v3/payments/pay_123", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("access_token"))
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"id":                "pay_123",
					"status":            "CONFIRMED",
					"billingType":       "PIX",
					"externalReference": "order-1",
					"value":             300.1,
				})
			},
			wantStatus: "CONFIRMED",
		},
		{
			name: "Failure - not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"errors":[{"code":"not_found"}]}`))
			},
			wantErr:       true,
			errorContains: "asaas error 404",
		},
		{
			name: "Failure - invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
			wantErr:       true,
			errorContains: "decode asaas response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.handler))
			defer server.Close()

			c := NewAsaasClient(&config.Asaas{BaseApiURL: server.URL + "/v3/", APIKey: "test-key"})

			payment, err := c.GetPayment(context.Background(), "pay_123")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, payment.Status)
			assert.Equal(t, "order-1", payment.ExternalReference)
			assert.Equal(t, "300.1", payment.Value.String())
			assert.True(t, payment.IsConfirmed())
		})
	}
}

func TestAsaasGetPaymentEmptyID(t *testing.T) {
	c := NewAsaasClient(&config.Asaas{BaseApiURL: "http://127.0.0.1:0"})
	_, err := c.GetPayment(context.Background(), "")
	assert.Error(t, err)
}
