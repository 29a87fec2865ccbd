package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

func employer(id string) Subject  { return Subject{UserID: id, Role: models.RoleEmployer} }
func jobseeker(id string) Subject { return Subject{UserID: id, Role: models.RoleJobseeker} }
func superuser(id string) Subject {
	return Subject{UserID: id, Role: models.RoleEmployer, IsSuperuser: true}
}

func ownedJob(employerID string) Resource {
	return JobResource(&models.Job{
		ID:      "job-1",
		Company: &models.Company{ID: "co-1", UserID: employerID},
	})
}

func TestAuthorizeJobOwnership(t *testing.T) {
	job := ownedJob("e1")

	require.NoError(t, Authorize(employer("e1"), job, ActionChange))
	require.NoError(t, Authorize(employer("e1"), job, ActionDelete))

	err := Authorize(employer("e2"), job, ActionChange)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	// superuser overrides ownership entirely
	require.NoError(t, Authorize(superuser("admin"), job, ActionChange))
	require.NoError(t, Authorize(superuser("admin"), job, ActionDelete))
}

func TestAuthorizeJobWithoutCompanyFailsClosed(t *testing.T) {
	job := JobResource(&models.Job{ID: "job-1"})

	err := Authorize(employer("e1"), job, ActionView)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestAuthorizeApplicationDeleteAsymmetry(t *testing.T) {
	app := ApplicationResource(&models.Application{
		ID:          "app-1",
		ApplicantID: "js1",
		Job: &models.Job{
			ID:      "job-1",
			Company: &models.Company{ID: "co-1", UserID: "e1"},
		},
	})

	// the owning employer may view and change, but never delete
	require.NoError(t, Authorize(employer("e1"), app, ActionView))
	require.NoError(t, Authorize(employer("e1"), app, ActionChange))
	err := Authorize(employer("e1"), app, ActionDelete)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	// the applicant may view only
	require.NoError(t, Authorize(jobseeker("js1"), app, ActionView))
	err = Authorize(jobseeker("js1"), app, ActionChange)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
	err = Authorize(jobseeker("js1"), app, ActionDelete)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	// an unrelated jobseeker sees nothing
	err = Authorize(jobseeker("js2"), app, ActionView)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	// only a superuser deletes
	require.NoError(t, Authorize(superuser("admin"), app, ActionDelete))
}

func TestAuthorizeAlertAndNotification(t *testing.T) {
	alert := AlertResource(&models.JobAlert{ID: "a1", UserID: "js1"})
	require.NoError(t, Authorize(jobseeker("js1"), alert, ActionDelete))
	assert.True(t, utils.IsCode(Authorize(jobseeker("js2"), alert, ActionDelete), utils.CodeForbidden))

	n := NotificationResource(&models.JobAlertNotification{UserID: "js1"})
	require.NoError(t, Authorize(jobseeker("js1"), n, ActionChange))
	assert.True(t, utils.IsCode(Authorize(jobseeker("js2"), n, ActionChange), utils.CodeForbidden))
}

func TestAuthorizeUnauthenticated(t *testing.T) {
	err := Authorize(Subject{}, ownedJob("e1"), ActionView)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestCanAccess(t *testing.T) {
	require.NoError(t, CanAccess(employer("e1"), models.RoleEmployer))
	require.NoError(t, CanAccess(superuser("admin"), models.RoleJobseeker))

	err := CanAccess(jobseeker("js1"), models.RoleEmployer)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	err = CanAccess(Subject{}, models.RoleEmployer)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestIsOwner(t *testing.T) {
	c := CompanyResource(&models.Company{ID: "co-1", UserID: "e1"})
	assert.True(t, IsOwner("e1", c))
	assert.False(t, IsOwner("e2", c))
	assert.False(t, IsOwner("", c))
}
