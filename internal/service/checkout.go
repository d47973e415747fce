package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/pkg/trm"
)

// CheckoutProvider creates a hosted payment flow at the payment provider
// and returns its session id and redirect URL.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, email string, items []entities.LineItem) (entities.CheckoutSession, error)
}

type CheckoutRequest struct {
	Email string
	Items []CheckoutItem
}

type CheckoutItem struct {
	ProductID int64
	Quantity  int
}

type CheckoutResult struct {
	OrderID     int64
	SessionID   string
	CheckoutURL string
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	provider  CheckoutProvider
}

func NewCheckoutService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, provider CheckoutProvider) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
		provider:  provider,
	}
}

// StartCheckout snapshots catalog prices into line items, opens a provider
// session and records the pending order under the session id. The session
// id is the only key the provider will reference in webhook deliveries.
func (s *checkoutService) StartCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	ids := make([]int64, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[int64]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entities.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		product, ok := byID[it.ProductID]
		if !ok {
			return CheckoutResult{}, fmt.Errorf("%w: id=%d", entities.ErrProductNotFound, it.ProductID)
		}
		items = append(items, entities.LineItem{
			Product:        product,
			Quantity:       it.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}

	session, err := s.provider.CreateSession(ctx, req.Email, items)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to create checkout session: %w", err)
	}

	var orderID int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		orderID, err = s.repo.CreateOrder(ctx, entities.Order{
			CheckoutSessionID: session.ID,
			Status:            entities.OrderPending,
			Email:             req.Email,
			Items:             items,
		})
		return err
	})
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout started",
		slog.Int64("order_id", orderID),
		slog.String("session_id", session.ID),
	)

	return CheckoutResult{
		OrderID:     orderID,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}
