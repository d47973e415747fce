package handler

import (
	"time"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/internal/service"
)

// Order is the read projection served to the storefront
type Order struct {
	ID                int64      `json:"id"`
	CheckoutSessionID string     `json:"checkout_session_id"`
	Status            string     `json:"status"`
	PaymentIntentID   string     `json:"payment_intent_id,omitempty"`
	Email             string     `json:"email,omitempty"`
	Shipping          Address    `json:"shipping"`
	Items             []LineItem `json:"items,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type LineItem struct {
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int     `json:"unit_price_cents"`
}

// Product is the minimal catalog projection embedded in order reads
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url,omitempty"`
}

type CheckoutRequest struct {
	Email string         `json:"email,omitempty" validate:"omitempty,email"`
	Items []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

type CheckoutItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

type CheckoutResponse struct {
	OrderID     int64  `json:"order_id"`
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func LineItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		Product: Product{
			ID:       i.Product.ID,
			Name:     i.Product.Name,
			Slug:     i.Product.Slug,
			ImageURL: i.Product.ImageURL,
		},
		Quantity:       i.Quantity,
		UnitPriceCents: i.UnitPriceCents,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	return Order{
		ID:                o.ID,
		CheckoutSessionID: o.CheckoutSessionID,
		Status:            string(o.Status),
		PaymentIntentID:   o.PaymentIntentID,
		Email:             o.Email,
		Shipping:          AddressEntityToJSON(o.Shipping),
		Items:             items,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func CheckoutRequestToService(req CheckoutRequest) service.CheckoutRequest {
	items := make([]service.CheckoutItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CheckoutItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return service.CheckoutRequest{
		Email: req.Email,
		Items: items,
	}
}
