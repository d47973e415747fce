package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/pkg/utils"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  Cache
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
	}
}

// GetOrderBySessionID serves the storefront's order page. Only terminal
// orders enter the cache: a pending order can still be mutated by a
// webhook delivery and must always be read through.
func (s *orderService) GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error) {
	if data, ok := s.cache.Get(sessionID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("session_id", sessionID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderBySessionID(ctx, sessionID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheIfTerminal(order)
	return order, nil
}

// WarmUpCache preloads the most recently settled orders.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestTerminalOrders(ctx, count)
	if err != nil {
		return err
	}
	for _, order := range orders {
		s.cacheIfTerminal(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) cacheIfTerminal(order entities.Order) {
	if !order.Status.Terminal() {
		return
	}
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.CheckoutSessionID, data)
}
