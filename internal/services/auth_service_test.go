package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/jobport/internal/auth"
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

func registerInput(role models.Role) RegisterInput {
	return RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "correct-horse",
		Role:     role,
		Phone:    "+1 555 0100",
		Location: "Remote",
	}
}

func TestRegisterCreatesUserAndProfileTogether(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	u, p, token, err := svc.Register(context.Background(), registerInput(models.RoleJobseeker))
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotNil(t, p)
	assert.NotEmpty(t, token)

	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, models.RoleJobseeker, p.Role)
	assert.NotEqual(t, "correct-horse", u.PasswordHash)

	// both rows landed, and the token carries the role
	_, err = repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	claims, err := auth.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, models.RoleJobseeker, claims.Role)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(newFakeUserRepo())

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing username", func(in *RegisterInput) { in.Username = "  " }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"unknown role", func(in *RegisterInput) { in.Role = "admin" }},
		{"empty role", func(in *RegisterInput) { in.Role = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := registerInput(models.RoleEmployer)
			tt.mutate(&in)
			_, _, _, err := svc.Register(context.Background(), in)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, _, _, err := svc.Register(context.Background(), registerInput(models.RoleJobseeker))
	require.NoError(t, err)

	in := registerInput(models.RoleJobseeker)
	in.Username = "someone-else"
	_, _, _, err = svc.Register(context.Background(), in)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	// the failed attempt left nothing behind
	assert.Len(t, repo.users, 1)
	assert.Len(t, repo.profiles, 1)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	_, _, _, err := svc.Register(context.Background(), registerInput(models.RoleEmployer))
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)

	// wrong password and unknown email both read as invalid credentials
	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
	_, _, err = svc.Login(context.Background(), "nobody@example.com", "correct-horse")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestLoginDisabledAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	u, _, _, err := svc.Register(context.Background(), registerInput(models.RoleJobseeker))
	require.NoError(t, err)
	repo.users[u.ID].IsActive = false

	_, _, err = svc.Login(context.Background(), "alice@example.com", "correct-horse")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestRoleOfMissingProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	role, err := svc.RoleOf(context.Background(), "no-such-user")
	require.NoError(t, err)
	assert.Equal(t, models.Role(""), role)
}
