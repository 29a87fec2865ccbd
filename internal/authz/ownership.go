package authz

import "github.com/jobport/jobport/internal/models"

type Kind string

const (
	KindCompany      Kind = "company"
	KindJob          Kind = "job"
	KindApplication  Kind = "application"
	KindJobAlert     Kind = "job_alert"
	KindNotification Kind = "notification"
)

// Resource is anything the gate can make a per-object decision about. The
// ownership chain (Application -> Job -> Company -> User, etc.) is walked at
// construction time from already-loaded records, so checks are O(1).
type Resource interface {
	Kind() Kind
	OwnerIDs() []string
}

type resource struct {
	kind   Kind
	owners []string
}

func (r resource) Kind() Kind         { return r.kind }
func (r resource) OwnerIDs() []string { return r.owners }

// IsOwner reports whether the user is one of the resource's designated owners.
func IsOwner(userID string, res Resource) bool {
	if userID == "" {
		return false
	}
	for _, id := range res.OwnerIDs() {
		if id != "" && id == userID {
			return true
		}
	}
	return false
}

func CompanyResource(c *models.Company) Resource {
	return resource{kind: KindCompany, owners: []string{c.UserID}}
}

// JobResource requires the job's company to be preloaded; a job with no
// company loaded has no owner and every non-superuser check fails closed.
func JobResource(j *models.Job) Resource {
	if j.Company == nil {
		return resource{kind: KindJob}
	}
	return resource{kind: KindJob, owners: []string{j.Company.UserID}}
}

// ApplicationResource carries two owners: the employer reached through
// Job -> Company, and the applicant. The capability table decides what each
// of them may do.
func ApplicationResource(a *models.Application) Resource {
	owners := []string{a.ApplicantID}
	if a.Job != nil && a.Job.Company != nil {
		owners = append(owners, a.Job.Company.UserID)
	}
	return resource{kind: KindApplication, owners: owners}
}

func AlertResource(al *models.JobAlert) Resource {
	return resource{kind: KindJobAlert, owners: []string{al.UserID}}
}

func NotificationResource(n *models.JobAlertNotification) Resource {
	return resource{kind: KindNotification, owners: []string{n.UserID}}
}
