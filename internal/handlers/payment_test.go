package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paygate/internal/models"
	"paygate/internal/services/payment"
	"paygate/internal/services/provider"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) PrepareRedirect(ctx context.Context, providerName string, req payment.CheckoutRequest) (*payment.RedirectForm, error) {
	args := m.Called(providerName, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.RedirectForm), args.Error(1)
}

func (m *MockPaymentService) GetTransactionStatus(ctx context.Context, reference string) (*payment.StatusView, error) {
	args := m.Called(reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.StatusView), args.Error(1)
}

func setupPaymentApp(svc *MockPaymentService) *fiber.App {
	h := NewPaymentHandler(svc)
	app := fiber.New()
	app.Post("/api/payments/:provider/form", h.PrepareRedirect)
	app.Get("/api/transactions/:reference", h.GetTransactionStatus)
	return app
}

func TestPrepareRedirectHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		form       *payment.RedirectForm
		err        error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			form:       &payment.RedirectForm{ActionURL: "https://openapi.alipaydev.com/gateway.do", Values: map[string]string{"item_number": "SO042"}},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "invalid request",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			err:        fmt.Errorf("%w: partner_country", payment.ErrInvalidRequest),
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "not found",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			err:        payment.ErrTransactionNotFound,
			wantStatus: fiber.StatusNotFound,
		},
		{
			name:       "unknown provider",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			err:        provider.ErrUnknownProvider,
			wantStatus: fiber.StatusNotFound,
		},
		{
			name:       "already paid",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			err:        payment.ErrInvalidState,
			wantStatus: fiber.StatusConflict,
		},
		{
			name:       "unpayable amount",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			err:        fmt.Errorf("%w: amount must be greater than zero", payment.ErrInvalidAmount),
			wantStatus: fiber.StatusConflict,
		},
		{
			name:       "storage failure",
			body:       `{"reference":"SO042","partner_country":"BE"}`,
			err:        errors.New("connection refused"),
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPaymentService)
			svc.On("PrepareRedirect", "alipay", payment.CheckoutRequest{Reference: "SO042", PartnerCountry: "BE"}).Return(tt.form, tt.err)
			app := setupPaymentApp(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/alipay/form", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.form != nil {
				var body struct {
					Data payment.RedirectForm `json:"data"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.form.ActionURL, body.Data.ActionURL)
				assert.Equal(t, "SO042", body.Data.Values["item_number"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPrepareRedirectHandler_BadBody(t *testing.T) {
	svc := new(MockPaymentService)
	app := setupPaymentApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/alipay/form", strings.NewReader(`{"reference":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "PrepareRedirect", mock.Anything, mock.Anything)
}

func TestGetTransactionStatusHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("GetTransactionStatus", "SO042").Return(&payment.StatusView{Reference: "SO042", State: models.StateDone}, nil)
		app := setupPaymentApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions/SO042", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Data payment.StatusView `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.StateDone, body.Data.State)
	})

	t.Run("ambiguous", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("GetTransactionStatus", "SO042").Return(nil, payment.ErrAmbiguousReference)
		app := setupPaymentApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/transactions/SO042", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
