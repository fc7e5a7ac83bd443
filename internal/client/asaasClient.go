package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"tour-booking-service/internal/config"
	"tour-booking-service/internal/model"
)

type AsaasClient interface {
	GetPayment(ctx context.Context, paymentID string) (*model.AsaasPayment, error)
}

type asaasClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewAsaasClient(asaasCfg *config.Asaas) AsaasClient {
	return &asaasClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: strings.TrimRight(asaasCfg.BaseApiURL, "/"),
		apiKey:     asaasCfg.APIKey,
	}
}

func (c *asaasClientImpl) GetPayment(ctx context.Context, paymentID string) (*model.AsaasPayment, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("empty payment id")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/payments/%s", c.baseApiURL, url.PathEscape(paymentID)),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("access_token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asaas get payment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("asaas error %d: %s", resp.StatusCode, string(b))
	}

	var payment model.AsaasPayment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("decode asaas response: %w", err)
	}

	return &payment, nil
}
