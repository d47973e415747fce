package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/atelier-commerce/order-service/internal/entities"
	"github.com/atelier-commerce/order-service/internal/service"
	"github.com/atelier-commerce/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderGetter interface {
	GetOrderBySessionID(ctx context.Context, sessionID string) (entities.Order, error)
}

type CheckoutStarter interface {
	StartCheckout(ctx context.Context, req service.CheckoutRequest) (service.CheckoutResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderGetter
	checkout CheckoutStarter
}

func NewHTTPHandler(logger *slog.Logger, orders OrderGetter, checkout CheckoutStarter) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		checkout: checkout,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/orders/{session_id}", h.GetOrderBySession)
	r.Post("/checkout", h.StartCheckout)
}

// GetOrderBySession returns the order placed under a checkout session.
// @Summary      Get order by checkout session id
// @Description  Returns the order with its line items and product projections
// @Tags         orders
// @Param        session_id   path      string  true  "Checkout session identifier"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{session_id} [get]
func (h *HTTPHandler) GetOrderBySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	if err := h.validate.Var(sessionID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderBySessionID(ctx, sessionID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("session_id", sessionID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// StartCheckout opens a checkout session for a cart.
// @Summary      Start a checkout session
// @Description  Snapshots catalog prices, creates a provider session and a pending order
// @Tags         checkout
// @Accept       json
// @Param        request  body  CheckoutRequest  true  "Cart contents"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error or unknown product"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /checkout [post]
func (h *HTTPHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.checkout.StartCheckout(ctx, CheckoutRequestToService(req))

	if errors.Is(err, entities.ErrProductNotFound) {
		checkoutSessionsTotal.WithLabelValues("rejected").Inc()
		utils.WriteError(w, "unknown product", http.StatusBadRequest)
		return
	}

	if err != nil {
		checkoutSessionsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to start checkout", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	checkoutSessionsTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, CheckoutResponse{
		OrderID:     result.OrderID,
		SessionID:   result.SessionID,
		CheckoutURL: result.CheckoutURL,
	}, http.StatusCreated)
}
