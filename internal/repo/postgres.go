package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id", "checkout_session_id", "status", "payment_intent_id", "email",
	"ship_line1", "ship_line2", "ship_city", "ship_state",
	"ship_postal_code", "ship_country", "created_at", "updated_at",
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("checkout_session_id", "status", "email").
		Values(o.CheckoutSessionID, string(entities.OrderPending), nullString(o.Email)).
		Suffix("RETURNING id").
		MustSql()

	var orderID int64
	if err := r.getContext(ctx, &orderID, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return orderID, nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price_cents")

	for _, it := range o.Items {
		q = q.Values(orderID, it.Product.ID, it.Quantity, it.UnitPriceCents)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order items: %w", err)
	}

	return orderID, nil
}

func (r *postgresRepo) GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"checkout_session_id": sessionID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

// LatestTerminalOrders returns the most recently settled orders. Only
// terminal orders are eligible for the read cache.
func (r *postgresRepo) LatestTerminalOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": []string{string(entities.OrderPaid), string(entities.OrderCancelled)}}).
		OrderBy("updated_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(
		"oi.order_id", "oi.product_id", "oi.quantity", "oi.unit_price_cents",
		"p.name AS product_name", "p.slug AS product_slug", "p.image_url AS product_image",
	).
		From("order_items oi").
		Join("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.order_id": ids}).
		OrderBy("oi.id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[int64][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}

	return result, nil
}

func (r *postgresRepo) GetProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	query, args := r.qb.Select("id", "name", "slug", "image_url", "price_cents").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// MarkPaid transitions the order to paid only while it is still pending.
// The status guard in the WHERE clause closes the race between concurrent
// deliveries: the first write wins, later ones report updated=false.
func (r *postgresRepo) MarkPaid(ctx context.Context, orderID int64, patch entities.CompletionPatch) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderPaid)).
		Set("payment_intent_id", nullString(patch.PaymentIntentID)).
		Set("email", nullString(patch.Email)).
		Set("ship_line1", nullString(patch.Shipping.Line1)).
		Set("ship_line2", nullString(patch.Shipping.Line2)).
		Set("ship_city", nullString(patch.Shipping.City)).
		Set("ship_state", nullString(patch.Shipping.State)).
		Set("ship_postal_code", nullString(patch.Shipping.PostalCode)).
		Set("ship_country", nullString(patch.Shipping.Country)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(entities.OrderPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}
	return rowsAffected(res)
}

// MarkCancelled transitions the order to cancelled with the same pending
// guard as MarkPaid.
func (r *postgresRepo) MarkCancelled(ctx context.Context, orderID int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderCancelled)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": orderID, "status": string(entities.OrderPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark order cancelled: %w", err)
	}
	return rowsAffected(res)
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	query, args := r.qb.Select(
		"oi.order_id", "oi.product_id", "oi.quantity", "oi.unit_price_cents",
		"p.name AS product_name", "p.slug AS product_slug", "p.image_url AS product_image",
	).
		From("order_items oi").
		Join("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.order_id": orderID}).
		OrderBy("oi.id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
