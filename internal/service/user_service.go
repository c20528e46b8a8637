package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/config"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/repository"
	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/pkg/hash"
)

var (
	ErrEmailTaken      = errors.New("This email already exists")
	ErrPhoneTaken      = errors.New("This phone number already exists")
	ErrEmailInUse      = errors.New("Email already in use")
	ErrWrongPassword   = errors.New("Current password is incorrect")
	ErrProfileNotFound = errors.New("User not found")
)

type UserService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,min=6,max=20"`
	Address  string `json:"address" validate:"required"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,min=6,max=20"`
	Address *string `json:"address" validate:"omitempty"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin vendor customer"`
	IsActive *bool   `json:"is_active"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type UserListResult struct {
	Users []*domain.User `json:"users"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a customer account. Email and phone are checked before the
// insert; the unique constraints remain the real guarantee.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if req.Phone != "" {
		if _, err := s.userRepo.GetByPhone(ctx, req.Phone); err == nil {
			return nil, ErrPhoneTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	passwordHash, err := hash.HashPasswordWithCost(req.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Address:      req.Address,
		Role:         domain.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial self-service update. Changing the email to
// one held by another account is rejected.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, ErrEmailInUse
		} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !hash.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	newHash, err := hash.HashPasswordWithCost(req.NewPassword, s.cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, id, newHash)
}

func (s *UserService) List(ctx context.Context, page, limit int) (*UserListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	users, total, err := s.userRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &UserListResult{
		Users: users,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

// UpdateUser is the admin-side update; flipping is_active here is how an
// account gets deactivated.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, ErrEmailInUse
		} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}
