package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/jobport/internal/authz"
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

func TestCompanyUpsertIsOnePerEmployer(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	sub := authz.Subject{UserID: "e1", Role: models.RoleEmployer}

	first, err := svc.Upsert(context.Background(), sub, CompanyInput{Name: "Acme", Location: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", first.Name)

	// a second upsert updates the same row instead of adding one
	second, err := svc.Upsert(context.Background(), sub, CompanyInput{Name: "Acme GmbH", Location: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme GmbH", second.Name)
	assert.Len(t, repo.companies, 1)
}

func TestCompanyUpsertValidation(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())
	sub := authz.Subject{UserID: "e1", Role: models.RoleEmployer}

	_, err := svc.Upsert(context.Background(), sub, CompanyInput{Name: "  ", Location: "Berlin"})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	js := authz.Subject{UserID: "js1", Role: models.RoleJobseeker}
	_, err = svc.Upsert(context.Background(), js, CompanyInput{Name: "Acme", Location: "Berlin"})
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestCompanyGetMineAndDelete(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	sub := authz.Subject{UserID: "e1", Role: models.RoleEmployer}

	_, err := svc.GetMine(context.Background(), sub)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	created, err := svc.Upsert(context.Background(), sub, CompanyInput{Name: "Acme", Location: "Berlin"})
	require.NoError(t, err)

	mine, err := svc.GetMine(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, created.ID, mine.ID)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	require.NoError(t, svc.Delete(context.Background(), sub))
	assert.Empty(t, repo.companies)
}
