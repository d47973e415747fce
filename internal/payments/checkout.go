package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/atelier-commerce/order-service/internal/config"
	"github.com/atelier-commerce/order-service/internal/entities"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// CheckoutClient opens hosted Stripe Checkout sessions.
type CheckoutClient struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

func NewCheckoutClient(cfg config.Stripe) *CheckoutClient {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &CheckoutClient{
		api:        api,
		currency:   strings.ToLower(cfg.Currency),
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (c *CheckoutClient) CreateSession(ctx context.Context, email string, items []entities.LineItem) (entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx

	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	for _, it := range items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(it.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(c.currency),
				UnitAmount: stripe.Int64(int64(it.UnitPriceCents)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Product.Name),
				},
			},
		})
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("failed to create stripe session: %w", err)
	}

	return entities.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
