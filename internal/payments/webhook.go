package payments

import (
	"encoding/json"
	"fmt"

	"github.com/atelier-commerce/order-service/internal/entities"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// Verifier authenticates inbound Stripe events and decodes them into the
// domain event union. Verification runs over the exact payload bytes
// received on the wire; re-encoding the JSON would break the signature.
type Verifier struct {
	secret string
}

func NewVerifier(webhookSecret string) *Verifier {
	return &Verifier{secret: webhookSecret}
}

func (v *Verifier) Verify(payload []byte, sigHeader string) (entities.WebhookEvent, error) {
	// The endpoint's API version is pinned in the provider dashboard and
	// may trail the SDK's pin.
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrVerificationFailed, err)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		return decodeCompleted(event.Data.Raw)
	case stripe.EventTypeCheckoutSessionExpired:
		return decodeExpired(event.Data.Raw)
	case stripe.EventTypePaymentIntentPaymentFailed:
		return decodePaymentFailed(event.Data.Raw)
	default:
		return entities.UnknownEvent{Type: string(event.Type)}, nil
	}
}

func decodeCompleted(raw json.RawMessage) (entities.WebhookEvent, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%w: checkout session: %v", entities.ErrMalformedEvent, err)
	}

	ev := entities.CheckoutCompleted{
		SessionID:     session.ID,
		CustomerEmail: session.CustomerEmail,
	}
	if session.PaymentIntent != nil {
		ev.PaymentIntentID = session.PaymentIntent.ID
	}
	if ev.CustomerEmail == "" && session.CustomerDetails != nil {
		ev.CustomerEmail = session.CustomerDetails.Email
	}
	// Shipping is not collected for every payment method; an absent block
	// leaves the address zero-valued.
	if sd := session.ShippingDetails; sd != nil && sd.Address != nil {
		ev.Shipping = entities.Address{
			Line1:      sd.Address.Line1,
			Line2:      sd.Address.Line2,
			City:       sd.Address.City,
			State:      sd.Address.State,
			PostalCode: sd.Address.PostalCode,
			Country:    sd.Address.Country,
		}
	}
	return ev, nil
}

func decodeExpired(raw json.RawMessage) (entities.WebhookEvent, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%w: checkout session: %v", entities.ErrMalformedEvent, err)
	}
	return entities.CheckoutExpired{SessionID: session.ID}, nil
}

func decodePaymentFailed(raw json.RawMessage) (entities.WebhookEvent, error) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return nil, fmt.Errorf("%w: payment intent: %v", entities.ErrMalformedEvent, err)
	}
	ev := entities.PaymentFailed{PaymentIntentID: intent.ID}
	if intent.LastPaymentError != nil {
		ev.Message = intent.LastPaymentError.Msg
	}
	return ev, nil
}
