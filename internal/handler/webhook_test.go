package handler_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/internal/handler"
	mocks "github.com/atelier-commerce/order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWebhookHandler_HandleEvent(t *testing.T) {
	type MockBehavior func(verifier *mocks.MockEventVerifier, reconciler *mocks.MockReconciler)

	payload := []byte(`{"type":"checkout.session.completed"}`)

	testCases := []struct {
		name         string
		signature    string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "valid delivery is acknowledged",
			signature: "t=1700000000,v1=deadbeef",
			mockBehavior: func(verifier *mocks.MockEventVerifier, reconciler *mocks.MockReconciler) {
				event := entities.CheckoutCompleted{SessionID: "cs_test_abc"}
				verifier.EXPECT().
					Verify(payload, "t=1700000000,v1=deadbeef").
					Return(event, nil).Once()
				reconciler.EXPECT().
					HandleEvent(mock.Anything, event).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"received":true}`,
		},
		{
			name:         "missing signature header",
			signature:    "",
			mockBehavior: func(_ *mocks.MockEventVerifier, _ *mocks.MockReconciler) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:      "signature verification failure",
			signature: "t=1700000000,v1=tampered",
			mockBehavior: func(verifier *mocks.MockEventVerifier, _ *mocks.MockReconciler) {
				verifier.EXPECT().
					Verify(payload, "t=1700000000,v1=tampered").
					Return(nil, entities.ErrVerificationFailed).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "processing failure answers 5xx for redelivery",
			signature: "t=1700000000,v1=deadbeef",
			mockBehavior: func(verifier *mocks.MockEventVerifier, reconciler *mocks.MockReconciler) {
				event := entities.CheckoutExpired{SessionID: "cs_test_abc"}
				verifier.EXPECT().
					Verify(payload, "t=1700000000,v1=deadbeef").
					Return(event, nil).Once()
				reconciler.EXPECT().
					HandleEvent(mock.Anything, event).
					Return(errors.New("db unavailable")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := mocks.NewMockEventVerifier(t)
			reconciler := mocks.NewMockReconciler(t)
			tc.mockBehavior(verifier, reconciler)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewWebhookHandler(logger, verifier, reconciler)
			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(payload))
			if tc.signature != "" {
				req.Header.Set("Stripe-Signature", tc.signature)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
