package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billkeeper/internal/auth"
	"github.com/mmynk/billkeeper/internal/storage/memory"
)

func newTestServer(t *testing.T) (*echo.Echo, *memory.Store, *auth.JWTManager) {
	t.Helper()

	store := memory.New()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authSvc := NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, logger)
	billSvc := NewBillService(store, logger)

	e := echo.New()
	RegisterRoutes(e, authSvc, billSvc, jwtManager)
	return e, store, jwtManager
}

// doJSON performs one request against the router and decodes the JSON
// response body.
func doJSON(t *testing.T, e *echo.Echo, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body: %s", rec.Body.String())
	return rec.Code, payload
}

func register(t *testing.T, e *echo.Echo, email, password string) {
	t.Helper()
	code, payload := doJSON(t, e, http.MethodPost, "/api/registration", map[string]string{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  password,
	}, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", payload["status"])
}

func TestRegistration(t *testing.T) {
	e, store, _ := newTestServer(t)

	register(t, e, "a@x.com", "pw")

	t.Run("duplicate email is rejected", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodPost, "/api/registration", map[string]string{
			"firstName": "Other",
			"lastName":  "Person",
			"email":     "a@x.com",
			"password":  "different",
		}, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "User Exists", payload["error"])
	})

	t.Run("exactly one record exists", func(t *testing.T) {
		user, err := store.GetUserByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Test", user.FirstName)
		assert.NotEqual(t, "pw", user.PasswordHash)
	})

	t.Run("missing password is bad input", func(t *testing.T) {
		code, _ := doJSON(t, e, http.MethodPost, "/api/registration", map[string]string{
			"email": "b@x.com",
		}, "")
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestLogin(t *testing.T) {
	e, _, jwtManager := newTestServer(t)
	register(t, e, "a@x.com", "pw")

	t.Run("valid credentials issue a token for the identity", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
			"email":    "a@x.com",
			"password": "pw",
		}, "")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "ok", payload["status"])

		token, ok := payload["data"].(string)
		require.True(t, ok, "data must carry the token")
		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
			"email":    "nobody@x.com",
			"password": "pw",
		}, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "User Not found", payload["error"])
	})

	t.Run("wrong password", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
			"email":    "a@x.com",
			"password": "wrong",
		}, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "InvAlid Password", payload["error"])
	})
}

func TestGetUserData(t *testing.T) {
	e, _, jwtManager := newTestServer(t)
	register(t, e, "a@x.com", "pw")

	t.Run("valid token resolves the user without the hash", func(t *testing.T) {
		token, err := jwtManager.Generate("a@x.com")
		require.NoError(t, err)

		code, payload := doJSON(t, e, http.MethodPost, "/api/getUserData", map[string]string{"token": token}, "")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "ok", payload["status"])

		data, ok := payload["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "a@x.com", data["email"])
		assert.NotContains(t, data, "password")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate("a@x.com")
		require.NoError(t, err)

		code, payload := doJSON(t, e, http.MethodPost, "/api/getUserData", map[string]string{"token": token}, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "token expired", payload["data"])
	})

	t.Run("malformed token", func(t *testing.T) {
		code, payload := doJSON(t, e, http.MethodPost, "/api/getUserData", map[string]string{"token": "garbage"}, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "invalid token", payload["data"])
	})
}
