package handler_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/internal/handler"
	mocks "github.com/atelier-commerce/order-service/internal/handler/mocks"
	"github.com/atelier-commerce/order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T) (*mocks.MockOrderGetter, *mocks.MockCheckoutStarter, chi.Router) {
	orders := mocks.NewMockOrderGetter(t)
	checkout := mocks.NewMockCheckoutStarter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := handler.NewHTTPHandler(logger, orders, checkout)
	r := chi.NewRouter()
	h.Init(r)

	return orders, checkout, r
}

func TestHTTPHandler_GetOrderBySession(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderGetter)

	testCases := []struct {
		name         string
		sessionID    string
		mockBehavior MockBehavior
		wantStatus   int
	}{
		{
			name:      "success",
			sessionID: "cs_test_abc",
			mockBehavior: func(orders *mocks.MockOrderGetter) {
				orders.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(entities.Order{
						ID:                42,
						CheckoutSessionID: "cs_test_abc",
						Status:            entities.OrderPaid,
						PaymentIntentID:   "pi_123",
						Email:             "a@b.com",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "not found",
			sessionID: "cs_missing",
			mockBehavior: func(orders *mocks.MockOrderGetter) {
				orders.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "internal error",
			sessionID: "cs_test_abc",
			mockBehavior: func(orders *mocks.MockOrderGetter) {
				orders.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, _, r := newTestRouter(t)
			tc.mockBehavior(orders)

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%s", tc.sessionID), nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"checkout_session_id":"cs_test_abc"`)
				assert.Contains(t, rec.Body.String(), `"status":"paid"`)
			}
		})
	}
}

func TestHTTPHandler_StartCheckout(t *testing.T) {
	type MockBehavior func(checkout *mocks.MockCheckoutStarter)

	testCases := []struct {
		name         string
		body         string
		mockBehavior MockBehavior
		wantStatus   int
	}{
		{
			name: "success",
			body: `{"email":"a@b.com","items":[{"product_id":1,"quantity":2}]}`,
			mockBehavior: func(checkout *mocks.MockCheckoutStarter) {
				checkout.EXPECT().
					StartCheckout(mock.Anything, service.CheckoutRequest{
						Email: "a@b.com",
						Items: []service.CheckoutItem{{ProductID: 1, Quantity: 2}},
					}).
					Return(service.CheckoutResult{
						OrderID:     42,
						SessionID:   "cs_test_abc",
						CheckoutURL: "https://pay.example/cs_test_abc",
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "invalid body",
			body:         `{bad json`,
			mockBehavior: func(_ *mocks.MockCheckoutStarter) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "empty cart",
			body:         `{"items":[]}`,
			mockBehavior: func(_ *mocks.MockCheckoutStarter) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "invalid email",
			body:         `{"email":"not-an-email","items":[{"product_id":1,"quantity":1}]}`,
			mockBehavior: func(_ *mocks.MockCheckoutStarter) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: `{"items":[{"product_id":99,"quantity":1}]}`,
			mockBehavior: func(checkout *mocks.MockCheckoutStarter) {
				checkout.EXPECT().
					StartCheckout(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "provider failure",
			body: `{"items":[{"product_id":1,"quantity":1}]}`,
			mockBehavior: func(checkout *mocks.MockCheckoutStarter) {
				checkout.EXPECT().
					StartCheckout(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, errors.New("provider unavailable")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, checkout, r := newTestRouter(t)
			tc.mockBehavior(checkout)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusCreated {
				assert.Contains(t, rec.Body.String(), `"session_id":"cs_test_abc"`)
			}
		})
	}
}
