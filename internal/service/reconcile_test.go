package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/internal/service"
	mocks "github.com/atelier-commerce/order-service/internal/service/mocks"
	txMocks "github.com/atelier-commerce/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventHandler interface {
	HandleEvent(ctx context.Context, ev entities.WebhookEvent) error
}

func newReconcileService(t *testing.T) (*mocks.MockOrderRepo, *mocks.MockNotifier, eventHandler) {
	orderRepo := mocks.NewMockOrderRepo(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	return orderRepo, notifier, service.NewReconcileService(logger, tx, orderRepo, notifier)
}

func TestReconcileService_HandleEvent(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, notifier *mocks.MockNotifier)

	dbError := errors.New("db error")

	pendingOrder := entities.Order{
		ID:                42,
		CheckoutSessionID: "cs_test_abc",
		Status:            entities.OrderPending,
		Email:             "checkout@b.com",
	}

	shipping := entities.Address{
		Line1:      "1 Rue de Rivoli",
		City:       "Paris",
		PostalCode: "75001",
		Country:    "FR",
	}

	testCases := []struct {
		name         string
		event        entities.WebhookEvent
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "completed transitions pending order to paid",
			event: entities.CheckoutCompleted{
				SessionID:       "cs_test_abc",
				PaymentIntentID: "pi_123",
				CustomerEmail:   "a@b.com",
				Shipping:        shipping,
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, notifier *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					MarkPaid(mock.Anything, int64(42), entities.CompletionPatch{
						PaymentIntentID: "pi_123",
						Email:           "a@b.com",
						Shipping:        shipping,
					}).
					Return(true, nil).Once()
				notifier.EXPECT().
					OrderStatusChanged(mock.Anything, entities.OrderStatusChange{
						OrderID:   42,
						SessionID: "cs_test_abc",
						Status:    entities.OrderPaid,
					}).
					Return(nil).Once()
			},
		},
		{
			name: "completed without provider email keeps checkout email",
			event: entities.CheckoutCompleted{
				SessionID:       "cs_test_abc",
				PaymentIntentID: "pi_123",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, notifier *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					MarkPaid(mock.Anything, int64(42), entities.CompletionPatch{
						PaymentIntentID: "pi_123",
						Email:           "checkout@b.com",
					}).
					Return(true, nil).Once()
				notifier.EXPECT().
					OrderStatusChanged(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name: "completed for already paid order is a no-op",
			event: entities.CheckoutCompleted{
				SessionID:       "cs_test_abc",
				PaymentIntentID: "pi_123",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockNotifier) {
				paid := pendingOrder
				paid.Status = entities.OrderPaid
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(paid, nil).Once()
			},
		},
		{
			name:  "expired after paid keeps order paid",
			event: entities.CheckoutExpired{SessionID: "cs_test_abc"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockNotifier) {
				paid := pendingOrder
				paid.Status = entities.OrderPaid
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(paid, nil).Once()
			},
		},
		{
			name:  "expired transitions pending order to cancelled",
			event: entities.CheckoutExpired{SessionID: "cs_test_abc"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, notifier *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					MarkCancelled(mock.Anything, int64(42)).
					Return(true, nil).Once()
				notifier.EXPECT().
					OrderStatusChanged(mock.Anything, entities.OrderStatusChange{
						OrderID:   42,
						SessionID: "cs_test_abc",
						Status:    entities.OrderCancelled,
					}).
					Return(nil).Once()
			},
		},
		{
			name: "completed for unknown session is acknowledged",
			event: entities.CheckoutCompleted{
				SessionID: "cs_unknown",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_unknown").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
		},
		{
			name: "lost conditional update race is a no-op",
			event: entities.CheckoutCompleted{
				SessionID:       "cs_test_abc",
				PaymentIntentID: "pi_123",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					MarkPaid(mock.Anything, int64(42), mock.Anything).
					Return(false, nil).Once()
			},
		},
		{
			name: "store failure surfaces so the provider retries",
			event: entities.CheckoutCompleted{
				SessionID: "cs_test_abc",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(entities.Order{}, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "publish failure does not fail the event",
			event: entities.CheckoutCompleted{
				SessionID:       "cs_test_abc",
				PaymentIntentID: "pi_123",
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, notifier *mocks.MockNotifier) {
				orderRepo.EXPECT().
					GetOrderBySessionID(mock.Anything, "cs_test_abc").
					Return(pendingOrder, nil).Once()
				orderRepo.EXPECT().
					MarkPaid(mock.Anything, int64(42), mock.Anything).
					Return(true, nil).Once()
				notifier.EXPECT().
					OrderStatusChanged(mock.Anything, mock.Anything).
					Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "payment failure is logged only",
			event: entities.PaymentFailed{
				PaymentIntentID: "pi_123",
				Message:         "card declined",
			},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockNotifier) {},
		},
		{
			name:         "unrecognized event type is acknowledged",
			event:        entities.UnknownEvent{Type: "invoice.created"},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockNotifier) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, notifier, svc := newReconcileService(t)
			tc.mockBehavior(orderRepo, notifier)

			err := svc.HandleEvent(context.Background(), tc.event)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// Order #42 under session cs_test_abc receives the same completed event
// twice: the first delivery settles it, the second reads the terminal
// state and performs no write.
func TestReconcileService_DuplicateDelivery(t *testing.T) {
	orderRepo, notifier, svc := newReconcileService(t)

	state := entities.Order{
		ID:                42,
		CheckoutSessionID: "cs_test_abc",
		Status:            entities.OrderPending,
	}

	orderRepo.EXPECT().
		GetOrderBySessionID(mock.Anything, "cs_test_abc").
		RunAndReturn(func(context.Context, string) (entities.Order, error) {
			return state, nil
		}).Times(2)
	orderRepo.EXPECT().
		MarkPaid(mock.Anything, int64(42), entities.CompletionPatch{
			PaymentIntentID: "pi_123",
			Email:           "a@b.com",
		}).
		RunAndReturn(func(context.Context, int64, entities.CompletionPatch) (bool, error) {
			state.Status = entities.OrderPaid
			state.Email = "a@b.com"
			state.PaymentIntentID = "pi_123"
			return true, nil
		}).Once()
	notifier.EXPECT().
		OrderStatusChanged(mock.Anything, mock.Anything).
		Return(nil).Once()

	event := entities.CheckoutCompleted{
		SessionID:       "cs_test_abc",
		PaymentIntentID: "pi_123",
		CustomerEmail:   "a@b.com",
	}

	require.NoError(t, svc.HandleEvent(context.Background(), event))
	require.Equal(t, entities.OrderPaid, state.Status)

	// Second, identical delivery.
	require.NoError(t, svc.HandleEvent(context.Background(), event))
	assert.Equal(t, entities.OrderPaid, state.Status)
	assert.Equal(t, "a@b.com", state.Email)
	assert.Equal(t, "pi_123", state.PaymentIntentID)
	assert.Equal(t, entities.Address{}, state.Shipping)
}
