package service

import (
	"context"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/repository"
	"interview-prep/internal/repository/models"
)

// UserService exposes profile reads and updates.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	row, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if row == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("User not found: %s", userID))
	}
	resp := dto.NewUserResponse(row.ToDomain())
	return &resp, nil
}

// UpdateProfile applies the non-nil fields of the request and returns the
// updated profile.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	row, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if row == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("User not found: %s", userID))
	}

	user := row.ToDomain()
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}

	if err := s.userRepo.UpdateUser(ctx, models.UserFromDomain(user)); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
