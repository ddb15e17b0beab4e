package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering-backend/internal/auth"
)

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	adminToken, err := tokens.Generate("admin", "ADMIN")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}
	customerToken, err := tokens.Generate("asha", "CUSTOMER")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	expired := auth.NewTokenManager("test-secret", -time.Minute)
	expiredToken, err := expired.Generate("admin", "ADMIN")
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	// Test handler asserts the principal reached the context
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFrom(r.Context())
		if !ok || p.Username == "" {
			t.Error("principal missing from request context")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	protected := RequireRole(tokens, "ADMIN")(testHandler)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "valid admin token",
			header:         "Bearer " + adminToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			header:         adminToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			header:         "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "customer token on admin route",
			header:         "Bearer " + customerToken,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/foods", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				if w.Body.String() != "success" {
					t.Errorf("body = %s, want success", w.Body.String())
				}
			}
		})
	}
}
