package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/models"
)

// Identity is the caller established from a verified token
type Identity struct {
	ID    string
	Email string
	Role  models.Role
}

// TokenService issues and verifies HS256 bearer tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service signing with secret
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue generates a new JWT token for a user
func (s *TokenService) Issue(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, internal("Failed to sign token", err)
	}

	return tokenString, expiresAt, nil
}

// Verify validates a JWT token and returns the identity it carries
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &Error{Kind: KindUnauthorized, Message: "Token has expired", Err: err}
		}
		return nil, &Error{Kind: KindUnauthorized, Message: "Invalid token", Err: err}
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, unauthorized("Invalid token claims")
	}

	return &Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  models.Role(claims.Role),
	}, nil
}

// VerifyHeader extracts a bearer token from an Authorization header value
// and verifies it
func (s *TokenService) VerifyHeader(header string) (*Identity, error) {
	if header == "" {
		return nil, unauthorized("Authorization header is required")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, unauthorized("Authorization header format must be Bearer {token}")
	}

	return s.Verify(strings.TrimSpace(parts[1]))
}

// AuthorizeRole fails with KindForbidden unless the identity holds one of
// the allowed roles
func AuthorizeRole(identity *Identity, allowed ...models.Role) error {
	if identity == nil {
		return unauthorized("Authentication required")
	}
	for _, role := range allowed {
		if identity.Role == role {
			return nil
		}
	}
	return forbidden("Access denied: insufficient role")
}
