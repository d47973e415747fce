package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderCancelled
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type Product struct {
	ID         int64
	Name       string
	Slug       string
	ImageURL   string
	PriceCents int
}

// LineItem snapshots the unit price at order creation; catalog price
// changes never alter a placed order.
type LineItem struct {
	Product        Product
	Quantity       int
	UnitPriceCents int
}

type Order struct {
	ID                int64
	CheckoutSessionID string
	Status            OrderStatus
	PaymentIntentID   string
	Email             string
	Shipping          Address
	Items             []LineItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CompletionPatch carries the fields written when an order moves to paid.
type CompletionPatch struct {
	PaymentIntentID string
	Email           string
	Shipping        Address
}

// CheckoutSession references a provider-hosted payment flow.
type CheckoutSession struct {
	ID  string
	URL string
}

// OrderStatusChange is published to downstream consumers after a
// successful transition out of pending.
type OrderStatusChange struct {
	OrderID   int64
	SessionID string
	Status    OrderStatus
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidOrder    = errors.New("invalid order data")
)
