package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"food-ordering-backend/internal/auth"
	"food-ordering-backend/internal/middleware"
	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/repository"
	"food-ordering-backend/internal/service"
	"food-ordering-backend/pkg/logger"
)

// newMenuRouter builds the /foods routes the way cmd/server does,
// including the admin-only middleware on mutations.
func newMenuRouter(t *testing.T) (chi.Router, *service.FoodService, *service.OrderService, *auth.TokenManager) {
	t.Helper()

	store := repository.NewInMemoryStore()
	foodService := service.NewFoodService(store.Foods())
	orderService := service.NewOrderService(store.Orders())
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	log := logger.New("info")
	handler := NewFoodHandler(foodService, log)
	adminOnly := middleware.RequireRole(tokens, models.RoleAdmin)

	r := chi.NewRouter()
	r.Route("/foods", func(r chi.Router) {
		r.Get("/", handler.ListFoods)
		r.Get("/{foodId}", handler.GetFood)
		r.Get("/{foodId}/can-delete", handler.CanDeleteFood)
		r.With(adminOnly).Post("/", handler.CreateFood)
		r.With(adminOnly).Put("/{foodId}", handler.UpdateFood)
		r.With(adminOnly).Delete("/{foodId}", handler.DeleteFood)
	})
	return r, foodService, orderService, tokens
}

func TestFoodHandler_CreateFood_AccessPolicy(t *testing.T) {
	router, foodService, _, tokens := newMenuRouter(t)

	adminToken, err := tokens.Generate("admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}
	customerToken, err := tokens.Generate("asha", models.RoleCustomer)
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	body, _ := json.Marshal(models.FoodRequest{
		Name:        "Masala Dosa",
		Price:       149.00,
		Description: "Crispy crepe with spiced potato filling",
	})

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "admin token", token: adminToken, expectedStatus: http.StatusCreated},
		{name: "customer token", token: customerToken, expectedStatus: http.StatusForbidden},
		{name: "no token", token: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/foods", bytes.NewReader(body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
		})
	}

	// Only the admin request created a food
	foods, err := foodService.ListFoods(context.Background())
	if err != nil {
		t.Fatalf("ListFoods() unexpected error = %v", err)
	}
	if len(foods) != 1 {
		t.Errorf("foods count = %d, want 1 (rejected requests must not create foods)", len(foods))
	}
}

func TestFoodHandler_DeleteFood(t *testing.T) {
	ctx := context.Background()
	router, foodService, orderService, tokens := newMenuRouter(t)

	adminToken, err := tokens.Generate("admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	food, err := foodService.CreateFood(ctx, models.FoodRequest{
		Name:        "Butter Chicken",
		Price:       349.00,
		Description: "Tender chicken in rich tomato and butter curry sauce",
	})
	if err != nil {
		t.Fatalf("CreateFood() unexpected error = %v", err)
	}

	if _, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items:        []models.OrderItemRequest{{FoodID: food.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("Checkout() unexpected error = %v", err)
	}

	doDelete := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/foods/1", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Blocked while the order is active
	if w := doDelete(); w.Code != http.StatusConflict {
		t.Errorf("delete with active order: status = %d, want %d", w.Code, http.StatusConflict)
	}

	// can-delete reports the same verdict
	req := httptest.NewRequest(http.MethodGet, "/foods/1/can-delete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("can-delete status = %d, want 200", w.Code)
	}
	var check models.DeleteCheck
	if err := json.NewDecoder(w.Body).Decode(&check); err != nil {
		t.Fatalf("failed to decode can-delete response: %v", err)
	}
	if check.Allowed || !check.HasActiveOrders {
		t.Errorf("can-delete = %+v, want blocked by active orders", check)
	}

	// Deliver the order, then the delete goes through
	if _, err := orderService.UpdateStatus(ctx, 1, models.StatusDelivered); err != nil {
		t.Fatalf("UpdateStatus() unexpected error = %v", err)
	}
	if w := doDelete(); w.Code != http.StatusOK {
		t.Errorf("delete after delivery: status = %d, want %d", w.Code, http.StatusOK)
	}

	// Gone now
	if w := doDelete(); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestFoodHandler_GetFood(t *testing.T) {
	router, foodService, _, _ := newMenuRouter(t)

	if _, err := foodService.CreateFood(context.Background(), models.FoodRequest{
		Name:        "Butter Chicken",
		Price:       349.00,
		Description: "Tender chicken in rich tomato and butter curry sauce",
	}); err != nil {
		t.Fatalf("CreateFood() unexpected error = %v", err)
	}

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "existing food", path: "/foods/1", expectedStatus: http.StatusOK},
		{name: "missing food", path: "/foods/42", expectedStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/foods/abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
		})
	}
}
