// Package service implements the HTTP handler layer: request binding,
// response payloads, and the mapping from domain errors to the API's
// wire contract.
package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/billkeeper/internal/auth"
	"github.com/mmynk/billkeeper/internal/storage"
)

// AuthService handles registration, login and user-data requests.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         storage.UserStore
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users storage.UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

type registrationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDataRequest struct {
	Token string `json:"token"`
}

// Register creates a new user account.
//
// Business-rule failures (duplicate email, store trouble) respond 200
// with an error payload; only malformed input is a 4xx.
func (s *AuthService) Register(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error"})
	}

	_, err := s.authenticator.Register(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return c.JSON(http.StatusOK, echo.Map{"error": "User Exists"})
		}
		s.logger.Error("registration failed", "email", req.Email, "error", err)
		return c.JSON(http.StatusOK, echo.Map{"status": "error"})
	}

	s.logger.Info("user registered", "email", req.Email)
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Login authenticates a user and issues a session token. A missing
// account and a wrong password produce distinct payloads.
func (s *AuthService) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error"})
	}

	user, err := s.authenticator.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return c.JSON(http.StatusOK, echo.Map{"error": "User Not found"})
		case errors.Is(err, auth.ErrInvalidPassword):
			return c.JSON(http.StatusOK, echo.Map{"status": "error", "error": "InvAlid Password"})
		default:
			s.logger.Error("login failed", "email", req.Email, "error", err)
			return c.JSON(http.StatusOK, echo.Map{"status": "error"})
		}
	}

	token, err := s.jwtManager.Generate(user.Email)
	if err != nil {
		s.logger.Error("failed to generate token", "email", user.Email, "error", err)
		return c.JSON(http.StatusOK, echo.Map{"status": "error"})
	}

	s.logger.Info("user logged in", "email", user.Email)
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "data": token})
}

// GetUserData resolves a token from the request body back to the user
// record. Expired and malformed tokens are reported distinctly; the
// password hash never leaves the server.
func (s *AuthService) GetUserData(c echo.Context) error {
	var req userDataRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error"})
	}

	claims, err := s.jwtManager.Validate(req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return c.JSON(http.StatusOK, echo.Map{"status": "error", "data": "token expired"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "error", "data": "invalid token"})
	}

	user, err := s.users.GetUserByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"status": "error", "data": "user not found"})
		}
		s.logger.Error("failed to load user", "email", claims.Email, "error", err)
		return c.JSON(http.StatusOK, echo.Map{"status": "error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "data": user})
}
