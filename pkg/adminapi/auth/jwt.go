// Package auth issues and validates the bearer tokens that protect
// realmcored's mutating admin endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Common errors for JWT operations.
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")
	ErrTokenSigningFailed  = errors.New("failed to sign token")
	ErrInvalidSecretLength = errors.New("JWT secret must be at least 16 characters")
)

// Claims identifies the operator a bearer token was issued to. There is
// no end-user account system behind this service; a token is issued
// out-of-band by whoever operates the cluster.
type Claims struct {
	jwt.RegisteredClaims

	// Operator is the name of the operator the token was issued to, for
	// audit logging.
	Operator string `json:"operator"`
}

// JWTConfig configures the JWT service.
type JWTConfig struct {
	// Secret is the HMAC signing key.
	Secret string

	// Issuer is the token issuer claim. Default: "realmcored".
	Issuer string

	// TokenDuration is the lifetime of issued tokens. Default: 1 hour.
	TokenDuration time.Duration
}

// JWTService signs and verifies operator bearer tokens.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a JWT service from config.
func NewJWTService(config JWTConfig) (*JWTService, error) {
	if len(config.Secret) < 16 {
		return nil, ErrInvalidSecretLength
	}
	if config.Issuer == "" {
		config.Issuer = "realmcored"
	}
	if config.TokenDuration == 0 {
		config.TokenDuration = time.Hour
	}
	return &JWTService{config: config}, nil
}

// IssueToken signs a token for operator, valid for the service's
// configured TokenDuration.
func (s *JWTService) IssueToken(operator string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.config.TokenDuration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Operator: operator,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", ErrTokenSigningFailed, err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies tokenString and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
