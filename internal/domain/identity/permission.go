package identity

import (
	"context"

	"github.com/google/uuid"
)

// Permission actions. A permission code is "<action>_<model>", e.g.
// "add_customer" or "change_invoice". Reads are open to any authenticated
// user of the company; only writes are permission checked.
const (
	ActionAdd    = "add"
	ActionChange = "change"
	ActionDelete = "delete"
)

// Model names used in permission codes
var permissionModels = []string{
	"user",
	"role",
	"category",
	"product",
	"payment_method",
	"department",
	"designation",
	"employee",
	"payslip",
	"customer",
	"supplier",
	"invoice",
	"sales_order",
	"purchase_order",
	"receive",
	"credit_note",
	"credits_application",
}

var knownPermissions = buildKnownPermissions()

func buildKnownPermissions() map[string]bool {
	m := make(map[string]bool, len(permissionModels)*3)
	for _, model := range permissionModels {
		for _, action := range []string{ActionAdd, ActionChange, ActionDelete} {
			m[PermissionCode(action, model)] = true
		}
	}
	return m
}

// PermissionCode builds the "<action>_<model>" code
func PermissionCode(action, model string) string {
	return action + "_" + model
}

// IsKnownPermission reports whether the code names a real action on a real
// model
func IsKnownPermission(code string) bool {
	return knownPermissions[code]
}

// AllPermissions returns every known permission code, the effective set of
// a company owner.
func AllPermissions() []string {
	codes := make([]string, 0, len(knownPermissions))
	for _, model := range permissionModels {
		for _, action := range []string{ActionAdd, ActionChange, ActionDelete} {
			codes = append(codes, PermissionCode(action, model))
		}
	}
	return codes
}

// EffectivePermissions computes a user's permission set: everything for an
// owner, otherwise the union across assigned roles.
func EffectivePermissions(user *User, roles []Role) map[string]bool {
	perms := make(map[string]bool)
	if user.IsOwner {
		for code := range knownPermissions {
			perms[code] = true
		}
		return perms
	}
	for _, role := range roles {
		for _, code := range role.Permissions {
			perms[code] = true
		}
	}
	return perms
}

// PermissionChecker answers whether a user may perform an action on a
// model. The HTTP middleware consults it for every write request.
type PermissionChecker interface {
	HasPermission(ctx context.Context, companyID, userID uuid.UUID, code string) (bool, error)
}
