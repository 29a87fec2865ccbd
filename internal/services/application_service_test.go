package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/jobport/internal/authz"
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type applicationFixture struct {
	apps      *fakeApplicationRepo
	jobs      *fakeJobRepo
	companies *fakeCompanyRepo
	svc       ApplicationService
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	f := &applicationFixture{
		apps:      newFakeApplicationRepo(),
		jobs:      newFakeJobRepo(),
		companies: newFakeCompanyRepo(),
	}
	require.NoError(t, f.companies.Upsert(context.Background(), &models.Company{
		ID: "co-1", UserID: "e1", Name: "Acme",
	}))
	require.NoError(t, f.jobs.Create(context.Background(), &models.Job{
		ID:        "job-1",
		CompanyID: "co-1",
		Title:     "Python Developer",
		Location:  "Remote",
		Deadline:  time.Now().UTC().AddDate(0, 1, 0),
		Company:   &models.Company{ID: "co-1", UserID: "e1", Name: "Acme"},
	}))
	f.svc = NewApplicationService(f.apps, f.jobs, f.companies)
	return f
}

var (
	applicant = authz.Subject{UserID: "js1", Role: models.RoleJobseeker}
	hirer     = authz.Subject{UserID: "e1", Role: models.RoleEmployer}
)

func TestApply(t *testing.T) {
	f := newApplicationFixture(t)

	a, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "Hello")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, a.Status)
	assert.Equal(t, "js1", a.ApplicantID)
	assert.Equal(t, "job-1", a.JobID)
}

func TestApplyTwiceConflicts(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	require.NoError(t, err)

	_, err = f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	assert.True(t, utils.IsCode(err, utils.CodeConflict))
	assert.Len(t, f.apps.apps, 1)
}

func TestApplyToExpiredJob(t *testing.T) {
	f := newApplicationFixture(t)
	require.NoError(t, f.jobs.Create(context.Background(), &models.Job{
		ID:        "job-old",
		CompanyID: "co-1",
		Deadline:  time.Now().UTC().AddDate(0, 0, -1),
	}))

	_, err := f.svc.Apply(context.Background(), applicant, "job-old", "/resumes/js1.pdf", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestApplyValidation(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), applicant, "job-1", "  ", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	long := strings.Repeat("x", maxCoverLetterLen+1)
	_, err = f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", long)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = f.svc.Apply(context.Background(), hirer, "job-1", "/resumes/e1.pdf", "")
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	_, err = f.svc.Apply(context.Background(), applicant, "missing", "/resumes/js1.pdf", "")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestApplicationGetVisibility(t *testing.T) {
	f := newApplicationFixture(t)
	a, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	require.NoError(t, err)

	// the applicant and the job's employer see it
	_, err = f.svc.Get(context.Background(), applicant, a.ID)
	require.NoError(t, err)
	_, err = f.svc.Get(context.Background(), hirer, a.ID)
	require.NoError(t, err)

	// anyone else gets a 403, not a 404
	stranger := authz.Subject{UserID: "js2", Role: models.RoleJobseeker}
	_, err = f.svc.Get(context.Background(), stranger, a.ID)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestApplicationUpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)
	a, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(context.Background(), hirer, a.ID, models.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, updated.Status)

	// the applicant owns the record but may not change it
	_, err = f.svc.UpdateStatus(context.Background(), applicant, a.ID, models.StatusRejected)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	_, err = f.svc.UpdateStatus(context.Background(), hirer, a.ID, "hired")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestApplicationDeleteSuperuserOnly(t *testing.T) {
	f := newApplicationFixture(t)
	a, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), hirer, a.ID)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))
	err = f.svc.Delete(context.Background(), applicant, a.ID)
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	admin := authz.Subject{UserID: "root", Role: models.RoleEmployer, IsSuperuser: true}
	require.NoError(t, f.svc.Delete(context.Background(), admin, a.ID))
	assert.Empty(t, f.apps.apps)
}

func TestListForEmployerSummary(t *testing.T) {
	f := newApplicationFixture(t)

	a1, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	require.NoError(t, err)
	js2 := authz.Subject{UserID: "js2", Role: models.RoleJobseeker}
	_, err = f.svc.Apply(context.Background(), js2, "job-1", "/resumes/js2.pdf", "")
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), hirer, a1.ID, models.StatusUnderReview)
	require.NoError(t, err)

	apps, sum, err := f.svc.ListForEmployer(context.Background(), hirer)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Applied)
	assert.Equal(t, 1, sum.UnderReview)

	// an employer with no company gets a 404
	_, _, err = f.svc.ListForEmployer(context.Background(), authz.Subject{UserID: "e2", Role: models.RoleEmployer})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestListMineApplications(t *testing.T) {
	f := newApplicationFixture(t)
	_, err := f.svc.Apply(context.Background(), applicant, "job-1", "/resumes/js1.pdf", "")
	require.NoError(t, err)

	mine, err := f.svc.ListMine(context.Background(), applicant)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := f.svc.ListMine(context.Background(), authz.Subject{UserID: "js2", Role: models.RoleJobseeker})
	require.NoError(t, err)
	assert.Empty(t, other)
}
