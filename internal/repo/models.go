package repo

import (
	"database/sql"
	"time"

	"github.com/atelier-commerce/order-service/internal/entities"
)

type Order struct {
	ID                int64          `db:"id"`
	CheckoutSessionID string         `db:"checkout_session_id"`
	Status            string         `db:"status"`
	PaymentIntentID   sql.NullString `db:"payment_intent_id"`
	Email             sql.NullString `db:"email"`
	ShipLine1         sql.NullString `db:"ship_line1"`
	ShipLine2         sql.NullString `db:"ship_line2"`
	ShipCity          sql.NullString `db:"ship_city"`
	ShipState         sql.NullString `db:"ship_state"`
	ShipPostalCode    sql.NullString `db:"ship_postal_code"`
	ShipCountry       sql.NullString `db:"ship_country"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type Product struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	Slug       string         `db:"slug"`
	ImageURL   sql.NullString `db:"image_url"`
	PriceCents int            `db:"price_cents"`
}

// OrderItem joins the snapshot row with its product projection.
type OrderItem struct {
	OrderID        int64          `db:"order_id"`
	ProductID      int64          `db:"product_id"`
	Quantity       int            `db:"quantity"`
	UnitPriceCents int            `db:"unit_price_cents"`
	ProductName    string         `db:"product_name"`
	ProductSlug    string         `db:"product_slug"`
	ProductImage   sql.NullString `db:"product_image"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:         p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		ImageURL:   nullStringToString(p.ImageURL),
		PriceCents: p.PriceCents,
	}
}

func OrderItemToEntity(i OrderItem) entities.LineItem {
	return entities.LineItem{
		Product: entities.Product{
			ID:       i.ProductID,
			Name:     i.ProductName,
			Slug:     i.ProductSlug,
			ImageURL: nullStringToString(i.ProductImage),
		},
		Quantity:       i.Quantity,
		UnitPriceCents: i.UnitPriceCents,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:                o.ID,
		CheckoutSessionID: o.CheckoutSessionID,
		Status:            entities.OrderStatus(o.Status),
		PaymentIntentID:   nullStringToString(o.PaymentIntentID),
		Email:             nullStringToString(o.Email),
		Shipping: entities.Address{
			Line1:      nullStringToString(o.ShipLine1),
			Line2:      nullStringToString(o.ShipLine2),
			City:       nullStringToString(o.ShipCity),
			State:      nullStringToString(o.ShipState),
			PostalCode: nullStringToString(o.ShipPostalCode),
			Country:    nullStringToString(o.ShipCountry),
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
