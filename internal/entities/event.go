package entities

import "errors"

// WebhookEvent is the closed set of payment provider notifications the
// reconciliation flow understands. Deliveries are at least once and may
// arrive out of order, so handlers of these events must be idempotent.
type WebhookEvent interface {
	// Kind is the provider's event type string, used for logging and metrics.
	Kind() string

	isWebhookEvent()
}

// CheckoutCompleted means the customer finished the hosted payment flow.
// Shipping stays zero-valued when the provider sends no shipping details.
type CheckoutCompleted struct {
	SessionID       string
	PaymentIntentID string
	CustomerEmail   string
	Shipping        Address
}

// CheckoutExpired means the hosted payment flow timed out unpaid.
type CheckoutExpired struct {
	SessionID string
}

// PaymentFailed reports a failed collection attempt. It carries no session
// reference, so it cannot be correlated back to an order and is logged only.
type PaymentFailed struct {
	PaymentIntentID string
	Message         string
}

// UnknownEvent is any event type outside the handled set. It is
// acknowledged without side effects to stay forward compatible with the
// provider adding new types.
type UnknownEvent struct {
	Type string
}

func (CheckoutCompleted) isWebhookEvent() {}
func (CheckoutExpired) isWebhookEvent()   {}
func (PaymentFailed) isWebhookEvent()     {}
func (UnknownEvent) isWebhookEvent()      {}

func (CheckoutCompleted) Kind() string { return "checkout.session.completed" }
func (CheckoutExpired) Kind() string   { return "checkout.session.expired" }
func (PaymentFailed) Kind() string     { return "payment_intent.payment_failed" }
func (e UnknownEvent) Kind() string    { return e.Type }

var (
	ErrVerificationFailed = errors.New("webhook verification failed")
	ErrMalformedEvent     = errors.New("malformed event payload")
)
