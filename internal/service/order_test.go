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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrderBySessionID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	paidOrder := entities.Order{
		ID:                42,
		CheckoutSessionID: "cs_test_abc",
		Status:            entities.OrderPaid,
		Email:             "a@b.com",
	}

	t.Run("cache hit", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		data, err := paidOrder.Marshal()
		require.NoError(t, err)
		cache.EXPECT().Get("cs_test_abc").Return(data, true).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		got, err := svc.GetOrderBySessionID(context.Background(), "cs_test_abc")

		require.NoError(t, err)
		assert.Equal(t, paidOrder, got)
	})

	t.Run("cache miss caches terminal order", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		cache.EXPECT().Get("cs_test_abc").Return(nil, false).Once()
		orderRepo.EXPECT().
			GetOrderBySessionID(mock.Anything, "cs_test_abc").
			Return(paidOrder, nil).Once()
		cache.EXPECT().Set("cs_test_abc", mock.Anything).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		got, err := svc.GetOrderBySessionID(context.Background(), "cs_test_abc")

		require.NoError(t, err)
		assert.Equal(t, paidOrder, got)
	})

	t.Run("pending order is never cached", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		pending := paidOrder
		pending.Status = entities.OrderPending

		cache.EXPECT().Get("cs_test_abc").Return(nil, false).Once()
		orderRepo.EXPECT().
			GetOrderBySessionID(mock.Anything, "cs_test_abc").
			Return(pending, nil).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		got, err := svc.GetOrderBySessionID(context.Background(), "cs_test_abc")

		require.NoError(t, err)
		assert.Equal(t, entities.OrderPending, got.Status)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		cache.EXPECT().Get("cs_missing").Return(nil, false).Once()
		orderRepo.EXPECT().
			GetOrderBySessionID(mock.Anything, "cs_missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		_, err := svc.GetOrderBySessionID(context.Background(), "cs_missing")

		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		cache.EXPECT().Get("cs_test_abc").Return(nil, false).Once()
		orderRepo.EXPECT().
			GetOrderBySessionID(mock.Anything, "cs_test_abc").
			Return(entities.Order{}, errors.New("connection reset")).Once()
		orderRepo.EXPECT().
			GetOrderBySessionID(mock.Anything, "cs_test_abc").
			Return(paidOrder, nil).Once()
		cache.EXPECT().Set("cs_test_abc", mock.Anything).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		got, err := svc.GetOrderBySessionID(context.Background(), "cs_test_abc")

		require.NoError(t, err)
		assert.Equal(t, paidOrder, got)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("caches settled orders", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		orders := []entities.Order{
			{ID: 1, CheckoutSessionID: "cs_1", Status: entities.OrderPaid},
			{ID: 2, CheckoutSessionID: "cs_2", Status: entities.OrderCancelled},
		}
		orderRepo.EXPECT().LatestTerminalOrders(mock.Anything, 100).Return(orders, nil).Once()
		cache.EXPECT().Set("cs_1", mock.Anything).Once()
		cache.EXPECT().Set("cs_2", mock.Anything).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		assert.NoError(t, svc.WarmUpCache(context.Background(), 100))
	})

	t.Run("repo failure", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		orderRepo.EXPECT().
			LatestTerminalOrders(mock.Anything, 100).
			Return(nil, errors.New("db error")).Once()

		svc := service.NewOrderService(logger, orderRepo, cache)
		assert.Error(t, svc.WarmUpCache(context.Background(), 100))
	})
}
