package authz

import (
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type Action string

const (
	ActionView   Action = "view"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
)

// Subject is the authenticated caller as seen by the gate.
type Subject struct {
	UserID      string
	Role        models.Role
	IsSuperuser bool
}

type capKey struct {
	role   models.Role
	kind   Kind
	action Action
}

// ownerCaps enumerates which (role, resource, action) triples are granted to
// the owning user. Anything absent is denied for non-superusers, which is how
// the employer/application-delete asymmetry is expressed: employers may view
// and change applications on their jobs but only a superuser may delete one.
var ownerCaps = map[capKey]bool{
	{models.RoleEmployer, KindCompany, ActionView}:   true,
	{models.RoleEmployer, KindCompany, ActionChange}: true,
	{models.RoleEmployer, KindCompany, ActionDelete}: true,

	{models.RoleEmployer, KindJob, ActionView}:   true,
	{models.RoleEmployer, KindJob, ActionChange}: true,
	{models.RoleEmployer, KindJob, ActionDelete}: true,

	{models.RoleEmployer, KindApplication, ActionView}:   true,
	{models.RoleEmployer, KindApplication, ActionChange}: true,

	{models.RoleJobseeker, KindApplication, ActionView}: true,

	{models.RoleJobseeker, KindJobAlert, ActionView}:   true,
	{models.RoleJobseeker, KindJobAlert, ActionChange}: true,
	{models.RoleJobseeker, KindJobAlert, ActionDelete}: true,

	{models.RoleJobseeker, KindNotification, ActionView}:   true,
	{models.RoleJobseeker, KindNotification, ActionChange}: true,
}

// Authorize decides whether the subject may perform the action on the
// resource. nil means allowed; a FORBIDDEN AppError means denied. Denial is
// deliberately distinct from not-found: callers that have already loaded the
// object surface a 403, leaking existence.
func Authorize(sub Subject, res Resource, action Action) error {
	const op = "authz.Authorize"

	if sub.UserID == "" {
		return utils.E(utils.CodeUnauthorized, op, "unauthenticated", nil)
	}
	if sub.IsSuperuser {
		return nil
	}
	if !IsOwner(sub.UserID, res) {
		return utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	if !ownerCaps[capKey{sub.Role, res.Kind(), action}] {
		return utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return nil
}

// CanAccess is the route-level check: authenticated and holding the required
// role. It backs the RequireRole middleware and is exposed for callers that
// gate outside gin.
func CanAccess(sub Subject, required models.Role) error {
	const op = "authz.CanAccess"

	if sub.UserID == "" {
		return utils.E(utils.CodeUnauthorized, op, "login required", nil)
	}
	if sub.IsSuperuser {
		return nil
	}
	if sub.Role != required {
		return utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return nil
}
