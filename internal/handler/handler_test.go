package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"tour-booking-service/internal/dto"
	"tour-booking-service/internal/middleware"
	"tour-booking-service/internal/model"
	"tour-booking-service/internal/repository"
	"tour-booking-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentService struct {
	err      error
	gotToken string
	gotBody  string
}

func (f *fakePaymentService) HandleAsaasWebhook(ctx context.Context, token string, body []byte) error {
	f.gotToken = token
	f.gotBody = string(body)
	return f.err
}

func (f *fakePaymentService) PollPendingPayments(ctx context.Context) error { return nil }

func (f *fakePaymentService) RunPoller(ctx context.Context, interval time.Duration) {}

type fakeCatalog struct {
	pedagogical []*model.PedagogicalTour
	tour        any
	err         error
	gotInput    service.TourInput
	gotKind     string
	gotID       string
}

func (f *fakeCatalog) ListPedagogical(ctx context.Context) ([]*model.PedagogicalTour, error) {
	return f.pedagogical, f.err
}

func (f *fakeCatalog) ListConventional(ctx context.Context) ([]*model.ConventionalTour, error) {
	return nil, f.err
}

func (f *fakeCatalog) GetBySlug(ctx context.Context, kind, slug string) (any, error) {
	return f.tour, f.err
}

func (f *fakeCatalog) CreateTour(ctx context.Context, kind string, in service.TourInput) (any, error) {
	f.gotKind = kind
	f.gotInput = in
	return f.tour, f.err
}

func (f *fakeCatalog) DeactivateTour(ctx context.Context, kind, id string) error {
	f.gotKind = kind
	f.gotID = id
	return f.err
}

type fakeNotifier struct {
	orders []string
}

func (f *fakeNotifier) SendOrderConfirmation(ctx context.Context, orderID string) {
	f.orders = append(f.orders, orderID)
}

func TestAsaasWebhook(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "accepted", wantStatus: http.StatusOK},
		{name: "bad token", serviceErr: service.ErrInvalidWebhookToken, wantStatus: http.StatusUnauthorized},
		{name: "bad payload", serviceErr: errors.New("decode webhook payload: EOF"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePaymentService{err: tt.serviceErr}
			h := NewWebhookHandler(svc, nil)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/asaas", strings.NewReader(`{"event":"PAYMENT_CONFIRMED"}`))
			req.Header.Set("asaas-access-token", "whsec")
			rec := httptest.NewRecorder()

			require.NoError(t, h.AsaasWebhook(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "whsec", svc.gotToken)
			assert.Equal(t, `{"event":"PAYMENT_CONFIRMED"}`, svc.gotBody)
		})
	}
}

func TestListPedagogical(t *testing.T) {
	h := NewTourHandler(&fakeCatalog{pedagogical: []*model.PedagogicalTour{
		{ID: "t1", Title: "Fazenda Histórica", Slug: "fazenda-historica", Price: decimal.RequireFromString("89.9")},
	}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/pedagogical", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListPedagogical(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.TourResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "pedagogical", resp[0].Kind)
	assert.Equal(t, "89.90", resp[0].Price)
}

func TestGetBySlug(t *testing.T) {
	tests := []struct {
		name       string
		catalog    *fakeCatalog
		wantStatus int
		wantKind   string
	}{
		{
			name:       "conventional",
			catalog:    &fakeCatalog{tour: &model.ConventionalTour{ID: "c1", Title: "Campos do Jordão", Slug: "campos-do-jordao"}},
			wantStatus: http.StatusOK,
			wantKind:   "conventional",
		},
		{
			name:       "not found",
			catalog:    &fakeCatalog{err: repository.ErrTourNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown kind",
			catalog:    &fakeCatalog{err: service.ErrUnknownTourKind},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTourHandler(tt.catalog, nil)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("kind", "slug")
			c.SetParamValues("conventional", "campos-do-jordao")

			require.NoError(t, h.GetBySlug(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantKind != "" {
				var resp dto.TourResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantKind, resp.Kind)
			}
		})
	}
}

func TestResendConfirmation(t *testing.T) {
	var logs bytes.Buffer
	notifier := &fakeNotifier{}
	h := NewOrderHandler(notifier, slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("order-1")
	c.Set(middleware.ContextSubject, "ops@agencia.example.com")

	require.NoError(t, h.ResendConfirmation(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"order-1"}, notifier.orders)
	assert.Contains(t, logs.String(), "admin=ops@agencia.example.com")
	assert.Contains(t, logs.String(), "order_id=order-1")
}

func TestCreateTour(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		catalog    *fakeCatalog
		wantStatus int
		wantActive bool
	}{
		{
			name:       "created active by default",
			body:       `{"title":"Fazenda Histórica","price":"89.90"}`,
			catalog:    &fakeCatalog{tour: &model.PedagogicalTour{ID: "t1", Title: "Fazenda Histórica", Slug: "fazenda-historica", Active: true}},
			wantStatus: http.StatusCreated,
			wantActive: true,
		},
		{
			name:       "created inactive",
			body:       `{"title":"Fazenda Histórica","price":89.9,"active":false}`,
			catalog:    &fakeCatalog{tour: &model.PedagogicalTour{ID: "t1", Title: "Fazenda Histórica", Slug: "fazenda-historica"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "bad json",
			body:       `{"title":`,
			catalog:    &fakeCatalog{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid tour",
			body:       `{"title":""}`,
			catalog:    &fakeCatalog{err: service.ErrInvalidTour},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "slug taken",
			body:       `{"title":"Fazenda Histórica"}`,
			catalog:    &fakeCatalog{err: repository.ErrTourSlugTaken},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown kind",
			body:       `{"title":"Fazenda Histórica"}`,
			catalog:    &fakeCatalog{err: service.ErrUnknownTourKind},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTourHandler(tt.catalog, nil)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("kind")
			c.SetParamValues("pedagogical")

			require.NoError(t, h.CreateTour(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "pedagogical", tt.catalog.gotKind)
				assert.Equal(t, "Fazenda Histórica", tt.catalog.gotInput.Title)
				assert.Equal(t, "89.9", tt.catalog.gotInput.Price.String())
				assert.Equal(t, tt.wantActive, tt.catalog.gotInput.Active)
			}
		})
	}
}

func TestDeactivateTour(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deactivated", wantStatus: http.StatusNoContent},
		{name: "not found", err: repository.ErrTourNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{err: tt.err}
			h := NewTourHandler(catalog, nil)

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("kind", "id")
			c.SetParamValues("conventional", "c1")

			require.NoError(t, h.DeactivateTour(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "c1", catalog.gotID)
		})
	}
}
