package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jala-youth/jala-web/internal/config"
)

// SessionCookie is the name of the cookie carrying the admin session token.
const SessionCookie = "jala_admin"

const issuer = "jala-web"

// Claims identifies a browser admin session. The remote API bearer token is
// never placed in the cookie; the session ID only keys it server-side.
type Claims struct {
	jwt.RegisteredClaims
}

// SessionID is the server-side key of the session.
func (c *Claims) SessionID() string {
	return c.ID
}

// AuthService issues and validates admin session tokens.
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{secret: []byte(cfg.SessionSecret), ttl: cfg.SessionTTL, now: time.Now}
}

// TTL is how long an issued session stays valid.
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// IssueSession creates a signed token for a fresh session ID.
func (s *AuthService) IssueSession() (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ValidateToken parses and validates a session token, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
