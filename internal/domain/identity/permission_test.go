package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionCode(t *testing.T) {
	assert.Equal(t, "add_customer", PermissionCode(ActionAdd, "customer"))
	assert.Equal(t, "change_invoice", PermissionCode(ActionChange, "invoice"))
	assert.Equal(t, "delete_sales_order", PermissionCode(ActionDelete, "sales_order"))
}

func TestIsKnownPermission(t *testing.T) {
	assert.True(t, IsKnownPermission("add_customer"))
	assert.True(t, IsKnownPermission("delete_credits_application"))
	assert.False(t, IsKnownPermission("read_customer"))
	assert.False(t, IsKnownPermission("add_unicorn"))
	assert.False(t, IsKnownPermission(""))
}

func TestEffectivePermissions_UnionOfRoles(t *testing.T) {
	companyID := uuid.New()
	user, err := NewUser(companyID, "clerk@example.com", "Clerk")
	require.NoError(t, err)

	sales, err := NewRole(companyID, "ROLE-SALES", "Sales")
	require.NoError(t, err)
	require.NoError(t, sales.SetPermissions([]string{"add_invoice", "change_invoice"}))

	stock, err := NewRole(companyID, "ROLE-STOCK", "Stock")
	require.NoError(t, err)
	require.NoError(t, stock.SetPermissions([]string{"change_product"}))

	perms := EffectivePermissions(user, []Role{*sales, *stock})
	assert.True(t, perms["add_invoice"])
	assert.True(t, perms["change_invoice"])
	assert.True(t, perms["change_product"])
	assert.False(t, perms["delete_invoice"])
	assert.False(t, perms["add_customer"])
}

func TestEffectivePermissions_OwnerGetsEverything(t *testing.T) {
	owner, err := NewOwner(uuid.New(), "owner@example.com", "Owner")
	require.NoError(t, err)

	perms := EffectivePermissions(owner, nil)
	for _, code := range AllPermissions() {
		assert.True(t, perms[code], "owner missing %s", code)
	}
}

func TestRole_SetPermissions_RejectsUnknownCodes(t *testing.T) {
	role, err := NewRole(uuid.New(), "ROLE-X", "X")
	require.NoError(t, err)
	assert.Error(t, role.SetPermissions([]string{"add_invoice", "fly_to_moon"}))
	assert.Empty(t, role.Permissions)
}
