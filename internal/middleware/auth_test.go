package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/trackpit/internal/auth"
	"github.com/ukydev/trackpit/internal/models"
)

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()
	service, err := auth.NewService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("Failed to create auth service: %v", err)
	}
	return service
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	authService := newAuthService(t)
	middleware := NewAuthMiddleware(authService)

	t.Run("valid bearer token", func(t *testing.T) {
		token, _ := authService.GenerateToken("front-desk", models.RoleAdmin)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			claims, ok := GetOperatorFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "front-desk", claims.Subject)
			assert.Equal(t, models.RoleAdmin, claims.Role)
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid cookie token", func(t *testing.T) {
		token, _ := authService.GenerateToken("front-desk", models.RoleViewer)

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("health skips auth", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
	})

	t.Run("disabled middleware passes everything", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/invoice/u1/s1", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		disabled := NewAuthMiddleware(nil)
		disabled.Authenticate(disabled.RequirePermission(models.ActionCreateInvoice)(handler)).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	authService := newAuthService(t)
	middleware := NewAuthMiddleware(authService)

	tests := []struct {
		name       string
		role       models.Role
		action     string
		wantCalled bool
		wantStatus int
	}{
		{"admin creates invoice", models.RoleAdmin, models.ActionCreateInvoice, true, http.StatusOK},
		{"viewer views services", models.RoleViewer, models.ActionViewServices, true, http.StatusOK},
		{"viewer cannot update timeline", models.RoleViewer, models.ActionUpdateTimeline, false, http.StatusForbidden},
		{"viewer cannot create invoice", models.RoleViewer, models.ActionCreateInvoice, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _ := authService.GenerateToken("operator", tt.role)

			req := httptest.NewRequest("POST", "/invoice/u1/s1", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
			})

			authHandler := middleware.Authenticate(middleware.RequirePermission(tt.action)(handler))
			authHandler.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("missing operator context", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/invoice/u1/s1", nil)
		w := httptest.NewRecorder()

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		middleware.RequirePermission(models.ActionCreateInvoice)(handler).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
