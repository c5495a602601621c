package jwt

import (
	"fmt"
	"time"

	"omnibook-admin/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the admin identity inside a signed token.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates admin session tokens.
type JWTManager struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTManager creates a manager with the signing secret and token lifetime.
func NewJWTManager(secret string, lifetime time.Duration) *JWTManager {
	if lifetime == 0 {
		lifetime = 24 * time.Hour
	}
	return &JWTManager{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// GenerateToken issues a signed token for a logged-in admin.
func (m *JWTManager) GenerateToken(admin *model.Admin) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    admin.Name,
		Role:    string(admin.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			Subject:   admin.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token string.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
