package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/pkg/trm"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (int64, error)
	GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error)
	LatestTerminalOrders(ctx context.Context, count int) ([]entities.Order, error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)

	// MarkPaid and MarkCancelled only touch rows still in pending and
	// report whether a row was written.
	MarkPaid(ctx context.Context, orderID int64, patch entities.CompletionPatch) (bool, error)
	MarkCancelled(ctx context.Context, orderID int64) (bool, error)
}

type Notifier interface {
	OrderStatusChanged(ctx context.Context, change entities.OrderStatusChange) error
}

type reconcileService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	notifier  Notifier
}

func NewReconcileService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, notifier Notifier) *reconcileService {
	return &reconcileService{
		logger:    logger.With(slog.String("service", "reconcile")),
		txManager: txManager,
		repo:      repo,
		notifier:  notifier,
	}
}

// HandleEvent applies one verified provider event to the order it
// references. Events are delivered at least once and possibly out of
// order; every branch is safe to replay.
func (s *reconcileService) HandleEvent(ctx context.Context, ev entities.WebhookEvent) error {
	switch e := ev.(type) {
	case entities.CheckoutCompleted:
		return s.completeOrder(ctx, e)
	case entities.CheckoutExpired:
		return s.expireOrder(ctx, e)
	case entities.PaymentFailed:
		// No session reference on the event and the intent id is only
		// persisted on completion, so there is no order to correlate.
		s.logger.WarnContext(ctx, "payment failed",
			slog.String("payment_intent_id", e.PaymentIntentID),
			slog.String("message", e.Message),
		)
		return nil
	case entities.UnknownEvent:
		s.logger.DebugContext(ctx, "ignoring unhandled event type", slog.String("type", e.Type))
		return nil
	default:
		s.logger.ErrorContext(ctx, "event variant without a handler", slog.String("kind", ev.Kind()))
		return nil
	}
}

func (s *reconcileService) completeOrder(ctx context.Context, ev entities.CheckoutCompleted) error {
	var change *entities.OrderStatusChange

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderBySessionID(ctx, ev.SessionID)
		if errors.Is(err, entities.ErrOrderNotFound) {
			s.logger.WarnContext(ctx, "completed session has no order", slog.String("session_id", ev.SessionID))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}

		if order.Status != entities.OrderPending {
			s.logger.DebugContext(ctx, "order already settled, skipping",
				slog.Int64("order_id", order.ID),
				slog.String("status", string(order.Status)),
			)
			return nil
		}

		patch := entities.CompletionPatch{
			PaymentIntentID: ev.PaymentIntentID,
			// Keep the email captured at checkout when the provider
			// sends none.
			Email:    order.Email,
			Shipping: ev.Shipping,
		}
		if ev.CustomerEmail != "" {
			patch.Email = ev.CustomerEmail
		}

		updated, err := s.repo.MarkPaid(ctx, order.ID, patch)
		if err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}
		if !updated {
			// A concurrent delivery settled the order between our read
			// and write.
			return nil
		}

		change = &entities.OrderStatusChange{
			OrderID:   order.ID,
			SessionID: ev.SessionID,
			Status:    entities.OrderPaid,
		}

		s.logger.InfoContext(ctx, "order paid",
			slog.Int64("order_id", order.ID),
			slog.String("session_id", ev.SessionID),
			slog.String("payment_intent_id", ev.PaymentIntentID),
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, change)
	return nil
}

func (s *reconcileService) expireOrder(ctx context.Context, ev entities.CheckoutExpired) error {
	var change *entities.OrderStatusChange

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderBySessionID(ctx, ev.SessionID)
		if errors.Is(err, entities.ErrOrderNotFound) {
			s.logger.WarnContext(ctx, "expired session has no order", slog.String("session_id", ev.SessionID))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}

		if order.Status != entities.OrderPending {
			s.logger.DebugContext(ctx, "order already settled, skipping",
				slog.Int64("order_id", order.ID),
				slog.String("status", string(order.Status)),
			)
			return nil
		}

		updated, err := s.repo.MarkCancelled(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to mark order cancelled: %w", err)
		}
		if !updated {
			return nil
		}

		change = &entities.OrderStatusChange{
			OrderID:   order.ID,
			SessionID: ev.SessionID,
			Status:    entities.OrderCancelled,
		}

		s.logger.InfoContext(ctx, "order cancelled",
			slog.Int64("order_id", order.ID),
			slog.String("session_id", ev.SessionID),
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, change)
	return nil
}

// notify publishes the change best effort. The webhook is already
// acknowledged by its own transition, a publish failure must not make
// the provider redeliver.
func (s *reconcileService) notify(ctx context.Context, change *entities.OrderStatusChange) {
	if change == nil {
		return
	}
	if err := s.notifier.OrderStatusChanged(ctx, *change); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish status change",
			slog.Int64("order_id", change.OrderID),
			slog.Any("error", err),
		)
	}
}
