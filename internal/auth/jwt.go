// Package auth issues and verifies the signed session tokens kept in the
// session cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type Manager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewManager(secretKey string, ttl time.Duration) *Manager {
	return &Manager{secretKey: []byte(secretKey), ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) GenerateToken(user models.SessionUser) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken returns the session user; any invalid, expired or foreign token
// is reported as common.ErrUnauthorized.
func (m *Manager) ParseToken(tokenString string) (models.SessionUser, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.SessionUser{}, fmt.Errorf("session expired: %w", common.ErrUnauthorized)
		}
		return models.SessionUser{}, fmt.Errorf("invalid session: %w", common.ErrUnauthorized)
	}

	if !token.Valid || claims.UserID == "" {
		return models.SessionUser{}, fmt.Errorf("invalid session: %w", common.ErrUnauthorized)
	}

	return models.SessionUser{ID: claims.UserID, Email: claims.Email, Username: claims.Username}, nil
}
