package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// Stripe caps webhook payloads well below this.
const maxWebhookPayload = 1 << 16

const signatureHeader = "Stripe-Signature"

type EventVerifier interface {
	Verify(payload []byte, sigHeader string) (entities.WebhookEvent, error)
}

type Reconciler interface {
	HandleEvent(ctx context.Context, ev entities.WebhookEvent) error
}

type WebhookHandler struct {
	logger     *slog.Logger
	verifier   EventVerifier
	reconciler Reconciler
}

func NewWebhookHandler(logger *slog.Logger, verifier EventVerifier, reconciler Reconciler) *WebhookHandler {
	return &WebhookHandler{
		logger:     logger.With(slog.String("handler", "webhook")),
		verifier:   verifier,
		reconciler: reconciler,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/payment", h.HandleEvent)
}

type receivedResponse struct {
	Received bool `json:"received"`
}

// HandleEvent receives payment provider events.
// @Summary      Payment provider webhook
// @Description  Verifies the delivery signature and reconciles the referenced order
// @Tags         webhooks
// @Param        Stripe-Signature  header  string  true  "Provider signature over the raw payload"
// @Success      200  {object}  receivedResponse
// @Failure      400  {object}  utils.ErrorResponse "Missing or invalid signature"
// @Failure      500  {object}  utils.ErrorResponse "Processing of a verified event failed"
// @Router       /webhooks/payment [post]
func (h *WebhookHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The signature is computed over the exact bytes on the wire, so the
	// body must reach the verifier unparsed.
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookPayload)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		webhookRejectedTotal.Inc()
		utils.WriteError(w, "failed to read payload", http.StatusBadRequest)
		return
	}

	sig := r.Header.Get(signatureHeader)
	if sig == "" {
		webhookRejectedTotal.Inc()
		utils.WriteError(w, "missing signature header", http.StatusBadRequest)
		return
	}

	event, err := h.verifier.Verify(payload, sig)
	if err != nil {
		// Not expected to become valid on redelivery, answer 4xx.
		webhookRejectedTotal.Inc()
		h.logger.WarnContext(ctx, "rejected webhook delivery", slog.Any("error", err))
		utils.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	start := time.Now()
	if err := h.reconciler.HandleEvent(ctx, event); err != nil {
		// 5xx so the provider redelivers; the handler is idempotent.
		webhookEventsTotal.WithLabelValues(event.Kind(), "error").Inc()
		h.logger.ErrorContext(ctx, "failed to process event",
			slog.String("type", event.Kind()),
			slog.Any("error", err),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	webhookEventsTotal.WithLabelValues(event.Kind(), "ok").Inc()
	webhookProcessingDuration.Observe(time.Since(start).Seconds())

	utils.WriteJSON(w, receivedResponse{Received: true}, http.StatusOK)
}
