package service

import (
	"context"
	"testing"
	"time"

	"food-ordering-backend/internal/apperr"
	"food-ordering-backend/internal/auth"
	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/repository"
)

func newUserFixture(t *testing.T) *UserService {
	t.Helper()
	store := repository.NewInMemoryStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(store.Users(), tokens)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	userService := newUserFixture(t)

	user, err := userService.Register(ctx, models.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error = %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("Register() role = %q, want %q", user.Role, models.RoleCustomer)
	}
	if user.Password == "secret123" {
		t.Error("Register() stored the plaintext password")
	}

	tests := []struct {
		name     string
		req      models.RegisterRequest
		wantKind apperr.Kind
	}{
		{
			name:     "duplicate username",
			req:      models.RegisterRequest{Username: "asha", Email: "other@example.com", Password: "secret123"},
			wantKind: apperr.KindConflict,
		},
		{
			name:     "duplicate email",
			req:      models.RegisterRequest{Username: "other", Email: "asha@example.com", Password: "secret123"},
			wantKind: apperr.KindConflict,
		},
		{
			name:     "short password",
			req:      models.RegisterRequest{Username: "ravi", Email: "ravi@example.com", Password: "abc"},
			wantKind: apperr.KindValidation,
		},
		{
			name:     "blank username",
			req:      models.RegisterRequest{Username: " ", Email: "ravi@example.com", Password: "secret123"},
			wantKind: apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := userService.Register(ctx, tt.req)
			if !apperr.IsKind(err, tt.wantKind) {
				t.Errorf("Register() error kind = %v, want %v", apperr.KindOf(err), tt.wantKind)
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	userService := newUserFixture(t)

	if _, err := userService.Register(ctx, models.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("Register() unexpected error = %v", err)
	}

	resp, err := userService.Login(ctx, models.LoginRequest{Username: "asha", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned empty token")
	}
	if resp.Role != models.RoleCustomer {
		t.Errorf("Login() role = %q, want %q", resp.Role, models.RoleCustomer)
	}

	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "wrong password", req: models.LoginRequest{Username: "asha", Password: "wrong"}},
		{name: "unknown user", req: models.LoginRequest{Username: "ghost", Password: "secret123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := userService.Login(ctx, tt.req)
			if !apperr.IsKind(err, apperr.KindUnauthenticated) {
				t.Errorf("Login() error kind = %v, want unauthenticated", apperr.KindOf(err))
			}
		})
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	userService := newUserFixture(t)

	created, err := userService.EnsureAdmin(ctx, "admin", "admin@foodorder.com", "admin123")
	if err != nil {
		t.Fatalf("EnsureAdmin() unexpected error = %v", err)
	}
	if !created {
		t.Error("EnsureAdmin() created = false on empty store, want true")
	}

	// Second call is a no-op
	created, err = userService.EnsureAdmin(ctx, "admin2", "admin2@foodorder.com", "admin123")
	if err != nil {
		t.Fatalf("EnsureAdmin() second call unexpected error = %v", err)
	}
	if created {
		t.Error("EnsureAdmin() created a second admin, want no-op")
	}

	resp, err := userService.Login(ctx, models.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login() as bootstrap admin unexpected error = %v", err)
	}
	if resp.Role != models.RoleAdmin {
		t.Errorf("bootstrap admin role = %q, want %q", resp.Role, models.RoleAdmin)
	}
}
