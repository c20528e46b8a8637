package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
)

// ErrInvalidToken is the single error surfaced for every validation failure.
// Callers must not be able to distinguish a bad signature from an expired or
// malformed token.
var ErrInvalidToken = errors.New("invalid token")

// TokenService signs access and refresh tokens with distinct HS256 secrets so
// that neither token type can be replayed as the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	issuer        string
}

func NewTokenService(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration, issuer string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		issuer:        issuer,
	}
}

func (s *TokenService) GenerateAccessToken(user *domain.User) (string, error) {
	return s.generate(user, domain.TokenTypeAccess, s.accessExpiry, s.accessSecret)
}

func (s *TokenService) GenerateRefreshToken(user *domain.User) (string, error) {
	return s.generate(user, domain.TokenTypeRefresh, s.refreshExpiry, s.refreshSecret)
}

func (s *TokenService) GenerateTokenPair(user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *TokenService) generate(user *domain.User, tokenType string, expiry time.Duration, secret []byte) (string, error) {
	now := time.Now()

	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken verifies signature and expiry against the access secret.
func (s *TokenService) ValidateAccessToken(tokenString string) (*domain.Claims, error) {
	return s.validate(tokenString, domain.TokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken verifies signature and expiry against the refresh secret.
func (s *TokenService) ValidateRefreshToken(tokenString string) (*domain.Claims, error) {
	return s.validate(tokenString, domain.TokenTypeRefresh, s.refreshSecret)
}

func (s *TokenService) validate(tokenString, tokenType string, secret []byte) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
