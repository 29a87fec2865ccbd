package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobport/jobport/internal/auth"
	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
	Phone    string
	Location string
}

type AuthService interface {
	// Register creates the user and its role-carrying profile atomically;
	// there is no window in which a user exists without a role.
	Register(ctx context.Context, in RegisterInput) (*models.User, *models.Profile, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// RoleOf tolerates a missing profile by reporting an empty role.
	RoleOf(ctx context.Context, userID string) (models.Role, error)
}

type authService struct {
	users pgrepo.UserRepository
}

func NewAuthService(users pgrepo.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, *models.Profile, string, error) {
	const op = "AuthService.Register"

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, nil, "", utils.E(utils.CodeInvalidArgument, op, "username, email, and password are required", nil)
	}
	if len(in.Password) < 8 {
		return nil, nil, "", utils.E(utils.CodeInvalidArgument, op, "password must be at least 8 characters", nil)
	}
	if !in.Role.Valid() {
		return nil, nil, "", utils.E(utils.CodeInvalidArgument, op, "role must be employer or jobseeker", nil)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, nil, "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
	}
	p := &models.Profile{
		UserID:    u.ID,
		Role:      in.Role,
		Phone:     in.Phone,
		Location:  in.Location,
		UpdatedAt: now,
	}

	if err := s.users.CreateWithProfile(ctx, u, p); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, nil, "", utils.E(utils.CodeConflict, op, "username or email already registered", err)
		}
		return nil, nil, "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	token, err := auth.Sign(u, p.Role)
	if err != nil {
		return nil, nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return u, p, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "AuthService.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if !u.IsActive {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "account is disabled", nil)
	}
	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	role, err := s.RoleOf(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.Sign(u, role)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return u, token, nil
}

func (s *authService) RoleOf(ctx context.Context, userID string) (models.Role, error) {
	const op = "AuthService.RoleOf"

	if userID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// no profile means no role; callers fail closed
			return "", nil
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}
	return p.Role, nil
}
