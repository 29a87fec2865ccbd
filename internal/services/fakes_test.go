package services

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobport/jobport/internal/mailer"
	"github.com/jobport/jobport/internal/models"
	pgrepo "github.com/jobport/jobport/internal/repositories/postgres"
	"github.com/jobport/jobport/internal/utils"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users    map[string]*models.User
	profiles map[string]*models.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*models.User{},
		profiles: map[string]*models.Profile{},
	}
}

func (r *fakeUserRepo) CreateWithProfile(_ context.Context, u *models.User, p *models.Profile) error {
	for _, other := range r.users {
		if other.Email == u.Email || other.Username == u.Username {
			return utils.ErrDuplicate
		}
	}
	cu, cp := *u, *p
	r.users[u.ID] = &cu
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cu := *u
	return &cu, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) GetProfile(_ context.Context, userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, p *models.Profile) error {
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*models.Company // by id
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*models.Company{}}
}

func (r *fakeCompanyRepo) Upsert(_ context.Context, c *models.Company) error {
	for _, other := range r.companies {
		if other.UserID == c.UserID {
			other.Name = c.Name
			other.Description = c.Description
			other.Website = c.Website
			other.LogoPath = c.LogoPath
			other.Location = c.Location
			other.UpdatedAt = c.UpdatedAt
			return nil
		}
	}
	cc := *c
	r.companies[c.ID] = &cc
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*models.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCompanyRepo) GetByUserID(_ context.Context, userID string) (*models.Company, error) {
	for _, c := range r.companies {
		if c.UserID == userID {
			cc := *c
			return &cc, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}}
}

func (r *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	cj := *j
	r.jobs[j.ID] = &cj
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, j *models.Job) error {
	if _, ok := r.jobs[j.ID]; !ok {
		return utils.ErrNotFound
	}
	cj := *j
	r.jobs[j.ID] = &cj
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cj := *j
	return &cj, nil
}

func (r *fakeJobRepo) List(_ context.Context, f pgrepo.JobFilter) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if f.ActiveOnly && !j.IsActive() {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].PostedDate.After(out[k].PostedDate) })
	return out, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *models.Application) error {
	for _, other := range r.apps {
		if other.JobID == a.JobID && other.ApplicantID == a.ApplicantID {
			return utils.ErrDuplicate
		}
	}
	ca := *a
	r.apps[a.ID] = &ca
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id string) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	ca := *a
	return &ca, nil
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCompany(_ context.Context, companyID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.Job != nil && a.Job.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	a, ok := r.apps[id]
	if !ok {
		return utils.ErrNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	delete(r.apps, id)
	return nil
}

type fakeAlertRepo struct {
	alerts  []models.JobAlert
	listErr error
}

func (r *fakeAlertRepo) Create(_ context.Context, a *models.JobAlert) error {
	r.alerts = append(r.alerts, *a)
	return nil
}

func (r *fakeAlertRepo) GetByID(_ context.Context, id string) (*models.JobAlert, error) {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			a := r.alerts[i]
			return &a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeAlertRepo) ListByUser(_ context.Context, userID string) ([]models.JobAlert, error) {
	var out []models.JobAlert
	for _, a := range r.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) ListAll(_ context.Context) ([]models.JobAlert, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]models.JobAlert(nil), r.alerts...), nil
}

func (r *fakeAlertRepo) Delete(_ context.Context, id string) error {
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications []models.JobAlertNotification
	// insertErrFor triggers a failure when inserting for this alert id
	insertErrFor string
}

func (r *fakeNotificationRepo) Insert(_ context.Context, n *models.JobAlertNotification) error {
	if r.insertErrFor != "" && n.AlertID == r.insertErrFor {
		return fmt.Errorf("insert failed for alert %s", n.AlertID)
	}
	for _, other := range r.notifications {
		if other.JobID == n.JobID && other.AlertID == n.AlertID {
			return utils.ErrDuplicate
		}
	}
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]models.JobAlertNotification, error) {
	var out []models.JobAlertNotification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID.Hex() == id && r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *fakeNotificationRepo) MarkManyRead(_ context.Context, userID string, ids []primitive.ObjectID) (int64, error) {
	want := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var n int64
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && want[r.notifications[i].ID] && !r.notifications[i].IsRead {
			r.notifications[i].IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, notif := range r.notifications {
		if notif.UserID == userID && !notif.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeMailQueue struct {
	sent []mailer.Message
	err  error
}

func (q *fakeMailQueue) Enqueue(_ context.Context, m mailer.Message) error {
	if q.err != nil {
		return q.err
	}
	q.sent = append(q.sent, m)
	return nil
}

type fakePublisher struct {
	published []models.JobAlertNotification
}

func (p *fakePublisher) Publish(_ context.Context, n *models.JobAlertNotification) error {
	p.published = append(p.published, *n)
	return nil
}
