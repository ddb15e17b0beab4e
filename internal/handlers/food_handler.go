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

// FoodHandler handles menu HTTP requests
type FoodHandler struct {
	service *service.FoodService
	logger  *slog.Logger
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(service *service.FoodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{service: service, logger: logger}
}

func foodID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "foodId"), 10, 64)
	return id, err == nil
}

// ListFoods handles GET /foods
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ListFoods(r.Context())
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, foods, h.logger)
}

// GetFood handles GET /foods/{foodId}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, ok := foodID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	food, err := h.service.GetFood(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, food, h.logger)
}

// CreateFood handles POST /foods (admin only)
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req models.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode food request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	food, err := h.service.CreateFood(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("food created", "food_id", food.ID, "name", food.Name)
	WriteJSON(w, http.StatusCreated, food, h.logger)
}

// UpdateFood handles PUT /foods/{foodId} (admin only)
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := foodID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	var req models.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode food request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	food, err := h.service.UpdateFood(r.Context(), id, req)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, food, h.logger)
}

// CanDeleteFood handles GET /foods/{foodId}/can-delete
func (h *FoodHandler) CanDeleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := foodID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	check, err := h.service.CanDelete(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, check, h.logger)
}

// DeleteFood handles DELETE /foods/{foodId} (admin only)
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := foodID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.service.DeleteFood(r.Context(), id); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("food deleted", "food_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Food deleted successfully"}, h.logger)
}
