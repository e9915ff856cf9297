package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("token missing or invalid")
	ErrExpiredToken = errors.New("token expired")
)

// UserClaims is the token payload. Username is empty for tokens issued
// without a login.
type UserClaims struct {
	Username string `json:"username,omitempty"`
	UserID   string `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	GenerateToken(userID, username string) (string, error)
	ValidateToken(token string) (*UserClaims, error)
}

// JWTManager signs HS256 tokens with a process-wide secret. A zero ttl
// issues tokens without expiry.
type JWTManager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewJWTManager(signingKey string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (m *JWTManager) GenerateToken(userID, username string) (string, error) {
	if userID == "" {
		return "", errors.New("user id cannot be empty")
	}

	now := m.now()
	payload := &UserClaims{
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) ValidateToken(tokenStr string) (*UserClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&UserClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}

			return m.signingKey, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
