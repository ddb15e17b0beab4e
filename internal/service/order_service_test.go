package service

import (
	"context"
	"reflect"
	"testing"

	"food-ordering-backend/internal/apperr"
	"food-ordering-backend/internal/models"
)

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	butterChicken := mustCreateFood(t, foodService, "Butter Chicken", 349.00)
	chai := mustCreateFood(t, foodService, "Masala Chai", 49.00)

	tests := []struct {
		name      string
		req       models.OrderRequest
		wantErr   bool
		wantKind  apperr.Kind
		wantTotal float64
	}{
		{
			name: "single line order",
			req: models.OrderRequest{
				CustomerName: "Asha",
				Items:        []models.OrderItemRequest{{FoodID: butterChicken.ID, Quantity: 2}},
			},
			wantTotal: 698.00,
		},
		{
			name: "multi line order",
			req: models.OrderRequest{
				CustomerName: "Ravi",
				Items: []models.OrderItemRequest{
					{FoodID: butterChicken.ID, Quantity: 1},
					{FoodID: chai.ID, Quantity: 3},
				},
			},
			wantTotal: 349.00 + 3*49.00,
		},
		{
			name:     "empty cart",
			req:      models.OrderRequest{CustomerName: "Asha"},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name: "missing customer name",
			req: models.OrderRequest{
				Items: []models.OrderItemRequest{{FoodID: butterChicken.ID, Quantity: 1}},
			},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name: "zero quantity",
			req: models.OrderRequest{
				CustomerName: "Asha",
				Items:        []models.OrderItemRequest{{FoodID: butterChicken.ID, Quantity: 0}},
			},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name: "negative quantity",
			req: models.OrderRequest{
				CustomerName: "Asha",
				Items:        []models.OrderItemRequest{{FoodID: butterChicken.ID, Quantity: -1}},
			},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name: "unknown food id",
			req: models.OrderRequest{
				CustomerName: "Asha",
				Items:        []models.OrderItemRequest{{FoodID: 9999, Quantity: 1}},
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := orderService.Checkout(ctx, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Checkout() expected error, got nil")
				}
				if !apperr.IsKind(err, tt.wantKind) {
					t.Errorf("Checkout() error kind = %v, want %v", apperr.KindOf(err), tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("Checkout() unexpected error = %v", err)
			}
			if order.OrderID == 0 {
				t.Error("Checkout() order ID not assigned")
			}
			if order.Status != string(models.StatusPending) {
				t.Errorf("Checkout() status = %q, want %q", order.Status, models.StatusPending)
			}
			if order.TotalPrice != tt.wantTotal {
				t.Errorf("Checkout() total = %.2f, want %.2f", order.TotalPrice, tt.wantTotal)
			}
			if len(order.Items) != len(tt.req.Items) {
				t.Errorf("Checkout() items count = %d, want %d", len(order.Items), len(tt.req.Items))
			}

			var sum float64
			for _, item := range order.Items {
				sum += item.Price
			}
			if sum != order.TotalPrice {
				t.Errorf("Checkout() total %.2f != sum of line prices %.2f", order.TotalPrice, sum)
			}
		})
	}
}

func TestOrderService_Checkout_ResponseShape(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	food := mustCreateFood(t, foodService, "Butter Chicken", 349.00)

	order, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items:        []models.OrderItemRequest{{FoodID: food.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error = %v", err)
	}

	want := []models.OrderItemResponse{
		{FoodName: "Butter Chicken", Quantity: 2, Price: 698.00},
	}
	if !reflect.DeepEqual(order.Items, want) {
		t.Errorf("Checkout() items = %+v, want %+v", order.Items, want)
	}
}

func TestOrderService_Checkout_FailureLeavesNothing(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	food := mustCreateFood(t, foodService, "Butter Chicken", 349.00)

	_, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items: []models.OrderItemRequest{
			{FoodID: food.ID, Quantity: 1},
			{FoodID: 9999, Quantity: 1}, // unknown id on the second line
		},
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("Checkout() error kind = %v, want not found", apperr.KindOf(err))
	}

	orders, err := orderService.ListOrders(ctx)
	if err != nil {
		t.Fatalf("ListOrders() unexpected error = %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("ListOrders() = %d orders after failed checkout, want 0", len(orders))
	}
}

func TestOrderService_SnapshotImmutability(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	food := mustCreateFood(t, foodService, "Butter Chicken", 349.00)

	order, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items:        []models.OrderItemRequest{{FoodID: food.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error = %v", err)
	}

	// Rename and reprice the food after checkout
	if _, err := foodService.UpdateFood(ctx, food.ID, models.FoodRequest{
		Name:        "Paneer Butter Masala",
		Price:       999.00,
		Description: "Cottage cheese in rich tomato-based gravy",
	}); err != nil {
		t.Fatalf("UpdateFood() unexpected error = %v", err)
	}

	got, err := orderService.GetOrder(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("GetOrder() unexpected error = %v", err)
	}
	if got.Items[0].FoodName != "Butter Chicken" {
		t.Errorf("item food name = %q after menu edit, want frozen snapshot", got.Items[0].FoodName)
	}
	if got.Items[0].Price != 698.00 {
		t.Errorf("item price = %.2f after menu edit, want 698.00", got.Items[0].Price)
	}
	if got.TotalPrice != 698.00 {
		t.Errorf("order total = %.2f after menu edit, want 698.00", got.TotalPrice)
	}
}

func TestOrderService_GetOrder_IdempotentRead(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	food := mustCreateFood(t, foodService, "Butter Chicken", 349.00)

	order, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items:        []models.OrderItemRequest{{FoodID: food.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error = %v", err)
	}

	first, err := orderService.GetOrder(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("GetOrder() unexpected error = %v", err)
	}
	second, err := orderService.GetOrder(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("GetOrder() unexpected error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("GetOrder() not idempotent: %+v != %+v", first, second)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	food := mustCreateFood(t, foodService, "Butter Chicken", 349.00)
	order, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items:        []models.OrderItemRequest{{FoodID: food.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error = %v", err)
	}

	tests := []struct {
		name     string
		id       int64
		status   models.OrderStatus
		wantErr  bool
		wantKind apperr.Kind
	}{
		{name: "confirm", id: order.OrderID, status: models.StatusConfirmed},
		{name: "deliver directly", id: order.OrderID, status: models.StatusDelivered},
		{name: "unknown status", id: order.OrderID, status: "EATEN", wantErr: true, wantKind: apperr.KindValidation},
		{name: "missing order", id: 9999, status: models.StatusConfirmed, wantErr: true, wantKind: apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orderService.UpdateStatus(ctx, tt.id, tt.status)

			if tt.wantErr {
				if err == nil {
					t.Fatal("UpdateStatus() expected error, got nil")
				}
				if !apperr.IsKind(err, tt.wantKind) {
					t.Errorf("UpdateStatus() error kind = %v, want %v", apperr.KindOf(err), tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("UpdateStatus() unexpected error = %v", err)
			}
			if got.Status != string(tt.status) {
				t.Errorf("UpdateStatus() status = %q, want %q", got.Status, tt.status)
			}
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	_, foodService, orderService := newMenuFixture(t)

	food := mustCreateFood(t, foodService, "Butter Chicken", 349.00)
	order, err := orderService.Checkout(ctx, models.OrderRequest{
		CustomerName: "Asha",
		Items:        []models.OrderItemRequest{{FoodID: food.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Checkout() unexpected error = %v", err)
	}

	if err := orderService.DeleteOrder(ctx, order.OrderID); err != nil {
		t.Fatalf("DeleteOrder() unexpected error = %v", err)
	}
	if _, err := orderService.GetOrder(ctx, order.OrderID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Error("DeleteOrder() order still readable after delete")
	}

	// Items went with the order, so the food is deletable again
	if err := foodService.DeleteFood(ctx, food.ID); err != nil {
		t.Errorf("DeleteFood() after order delete unexpected error = %v", err)
	}

	if err := orderService.DeleteOrder(ctx, 9999); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("DeleteOrder() error kind = %v, want not found", apperr.KindOf(err))
	}
}
