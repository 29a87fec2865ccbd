package services

import (
	"context"
	"errors"
	"time"

	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

type ProfileUpdate struct {
	Phone      *string
	Location   *string
	AvatarPath *string
}

type ProfileService interface {
	GetMe(ctx context.Context, userID string) (*models.Profile, error)
	// Update changes contact fields only; the role is fixed at registration.
	Update(ctx context.Context, userID string, in ProfileUpdate) (*models.Profile, error)
}

type profileService struct {
	users pgrepo.UserRepository
}

func NewProfileService(users pgrepo.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) GetMe(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.GetMe"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*models.Profile, error) {
	const op = "ProfileService.Update"

	p, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.AvatarPath != nil {
		p.AvatarPath = *in.AvatarPath
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateProfile(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return p, nil
}
