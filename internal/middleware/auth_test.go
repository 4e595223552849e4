package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/billkeeper/internal/auth"
)

func gateRequest(t *testing.T, jwtManager *auth.JWTManager, header string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := RequireAuth(jwtManager)(func(c echo.Context) error {
		return c.String(http.StatusOK, GetEmail(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)

	t.Run("missing header", func(t *testing.T) {
		rec := gateRequest(t, jwtManager, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status: got %d want 401", rec.Code)
		}
	})

	t.Run("non-bearer header", func(t *testing.T) {
		rec := gateRequest(t, jwtManager, "Basic abc123")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status: got %d want 403", rec.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := gateRequest(t, jwtManager, "Bearer garbage")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status: got %d want 403", rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewJWTManager("secret", -time.Minute)
		tok, err := expired.Generate("a@x.com")
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		rec := gateRequest(t, jwtManager, "Bearer "+tok)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status: got %d want 403", rec.Code)
		}
	})

	t.Run("valid token attaches the identity", func(t *testing.T) {
		tok, err := jwtManager.Generate("a@x.com")
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		rec := gateRequest(t, jwtManager, "Bearer "+tok)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d want 200", rec.Code)
		}
		if rec.Body.String() != "a@x.com" {
			t.Fatalf("identity: got %q want %q", rec.Body.String(), "a@x.com")
		}
	})
}
