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

func TestCheckoutService_StartCheckout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mug := entities.Product{ID: 1, Name: "Mug", Slug: "mug", PriceCents: 1200}
	tee := entities.Product{ID: 2, Name: "Tee", Slug: "tee", PriceCents: 2500}

	t.Run("creates pending order with snapshotted prices", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockCheckoutProvider(t)
		tx := txMocks.NewMockManager(t)
		tx.EXPECT().
			Do(mock.Anything, mock.Anything).
			RunAndReturn(
				func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Once()

		wantItems := []entities.LineItem{
			{Product: mug, Quantity: 2, UnitPriceCents: 1200},
			{Product: tee, Quantity: 1, UnitPriceCents: 2500},
		}

		orderRepo.EXPECT().
			GetProductsByIDs(mock.Anything, []int64{1, 2}).
			Return([]entities.Product{mug, tee}, nil).Once()
		provider.EXPECT().
			CreateSession(mock.Anything, "a@b.com", wantItems).
			Return(entities.CheckoutSession{ID: "cs_test_abc", URL: "https://pay.example/cs_test_abc"}, nil).Once()
		orderRepo.EXPECT().
			CreateOrder(mock.Anything, entities.Order{
				CheckoutSessionID: "cs_test_abc",
				Status:            entities.OrderPending,
				Email:             "a@b.com",
				Items:             wantItems,
			}).
			Return(int64(42), nil).Once()

		svc := service.NewCheckoutService(logger, tx, orderRepo, provider)
		res, err := svc.StartCheckout(context.Background(), service.CheckoutRequest{
			Email: "a@b.com",
			Items: []service.CheckoutItem{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 1},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.OrderID)
		assert.Equal(t, "cs_test_abc", res.SessionID)
		assert.Equal(t, "https://pay.example/cs_test_abc", res.CheckoutURL)
	})

	t.Run("unknown product id", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockCheckoutProvider(t)
		tx := txMocks.NewMockManager(t)

		orderRepo.EXPECT().
			GetProductsByIDs(mock.Anything, []int64{99}).
			Return(nil, nil).Once()

		svc := service.NewCheckoutService(logger, tx, orderRepo, provider)
		_, err := svc.StartCheckout(context.Background(), service.CheckoutRequest{
			Items: []service.CheckoutItem{{ProductID: 99, Quantity: 1}},
		})

		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("provider failure", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		provider := mocks.NewMockCheckoutProvider(t)
		tx := txMocks.NewMockManager(t)

		orderRepo.EXPECT().
			GetProductsByIDs(mock.Anything, []int64{1}).
			Return([]entities.Product{mug}, nil).Once()
		provider.EXPECT().
			CreateSession(mock.Anything, "", mock.Anything).
			Return(entities.CheckoutSession{}, errors.New("provider unavailable")).Once()

		svc := service.NewCheckoutService(logger, tx, orderRepo, provider)
		_, err := svc.StartCheckout(context.Background(), service.CheckoutRequest{
			Items: []service.CheckoutItem{{ProductID: 1, Quantity: 1}},
		})

		assert.ErrorContains(t, err, "failed to create checkout session")
	})
}
