package service

import (
	"context"
	"errors"
	"log"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/config"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/repository"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/hash"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/jwt"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/ratelimit"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAccountDeactivated = errors.New("Account is deactivated")
	ErrUserNotFound       = errors.New("User not found or inactive")
	ErrTooManyAttempts    = errors.New("Too many failed login attempts, try again later")
)

// AuthService orchestrates login and token refresh. It never persists partial
// state: tokens are only handed back after every check has passed.
type AuthService struct {
	userRepo     repository.UserRepository
	tokenService *jwt.TokenService
	limiter      *ratelimit.LoginLimiter
	cfg          *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User   *domain.User
	Tokens *domain.TokenPair
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenService *jwt.TokenService,
	limiter *ratelimit.LoginLimiter,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		limiter:      limiter,
		cfg:          cfg,
	}
}

// Login verifies credentials and mints the access/refresh token pair.
// Unknown emails and wrong passwords fail identically; a deactivated account
// is reported as such, matching the deployed behavior.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := s.limiter.Check(ctx, req.Email); err != nil {
		if errors.Is(err, ratelimit.ErrTooManyAttempts) {
			return nil, ErrTooManyAttempts
		}
		// Redis being down must not lock everyone out
		log.Printf("Login limiter check failed: %v", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if !hash.VerifyPassword(req.Password, user.PasswordHash) {
		if err := s.limiter.RecordFailure(ctx, req.Email); err != nil {
			log.Printf("Failed to record login failure: %v", err)
		}
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:   user,
		Tokens: tokens,
	}, nil
}

// Refresh validates the refresh token and mints a new access token. The
// refresh token itself is not rotated; it stays valid for its original
// lifetime. The user is re-fetched by id so that a deactivated or deleted
// account cannot keep renewing sessions on stale claims.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", jwt.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !user.IsActive {
		return "", ErrUserNotFound
	}

	return s.tokenService.GenerateAccessToken(user)
}
