package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/service"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

func orderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	return id, err == nil
}

// Checkout handles POST /orders/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	order, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("order created",
		"order_id", order.OrderID,
		"customer", order.CustomerName,
		"total", order.TotalPrice,
		"items_count", len(order.Items),
	)
	WriteJSON(w, http.StatusOK, order, h.logger)
}

// ListOrders handles GET /orders (admin only)
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.logger)
}

// GetOrder handles GET /orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, order, h.logger)
}

// UpdateOrder handles PUT /orders/{orderId} (admin only)
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	var req models.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode order update", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("order status updated", "order_id", id, "status", order.Status)
	WriteJSON(w, http.StatusOK, order, h.logger)
}

// DeleteOrder handles DELETE /orders/{orderId} (admin only)
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("order deleted", "order_id", id)
	w.WriteHeader(http.StatusNoContent)
}
