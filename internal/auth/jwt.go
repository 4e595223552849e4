package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and signed by us
	// but its expiry has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid means the token is malformed, unsigned, or signed
	// with the wrong key. Kept distinct from ErrTokenExpired so callers
	// can return the correct denial reason.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrMissingToken means no token was supplied at all.
	ErrMissingToken = errors.New("authorization token required")
)

// Claims represents the session claims for a user: the email identity
// plus the registered expiry.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates signed session tokens.
//
// Tokens are stateless bearer credentials: validity is fully determined
// by signature and expiry, never by server-side state. There is no
// revocation before expiry — an acknowledged limitation of the design.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewJWTManager creates a new JWT manager with the given secret and token
// duration. The secret is a process-wide value loaded at startup;
// compromising it invalidates the whole trust boundary.
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate creates a new HS256 token embedding the email claim, expiring
// after the manager's token duration.
func (m *JWTManager) Generate(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and validates a token, returning the claims if valid.
// Failures are ErrTokenExpired or ErrTokenInvalid, never raw parser
// errors.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
