// Package auth mints and verifies operator access tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// ErrInvalidToken wraps every validation failure. It matches
// domain.ErrUnauthorized.
var ErrInvalidToken = fmt.Errorf("invalid access token: %w", domain.ErrUnauthorized)

// clockSkew tolerates small clock drift between shop-floor terminals.
const clockSkew = 30 * time.Second

// JWTManager issues and validates HS256 access tokens. There is no login
// flow; tokens are minted with `prodctl token`.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTManager expects a secret of at least 32 bytes; config validation
// enforces that.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
		now: time.Now,
	}
}

type operatorClaims struct {
	jwt.RegisteredClaims
	Role domain.OperatorRole `json:"role"`
}

// GenerateAccessToken signs a token for operatorID carrying role.
func (m *JWTManager) GenerateAccessToken(operatorID uuid.UUID, role domain.OperatorRole) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := m.now()
	claims := operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   operatorID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the operator and role a token was issued for.
func (m *JWTManager) ValidateAccessToken(raw string) (uuid.UUID, domain.OperatorRole, error) {
	var claims operatorClaims
	_, err := m.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, "", errors.Join(ErrInvalidToken, err)
	}

	operatorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", errors.Join(ErrInvalidToken, fmt.Errorf("subject: %w", err))
	}
	if !claims.Role.IsValid() {
		return uuid.Nil, "", errors.Join(ErrInvalidToken, fmt.Errorf("invalid role %q", claims.Role))
	}
	return operatorID, claims.Role, nil
}

// ValidateToken satisfies the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	id, role, err := m.ValidateAccessToken(token)
	return id, string(role), err
}
