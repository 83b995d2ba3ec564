package schemas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeadEnums(t *testing.T) {
	for _, s := range LeadStatuses {
		require.True(t, IsValidLeadStatus(s))
	}
	require.False(t, IsValidLeadStatus("Archived"))
	require.False(t, IsValidLeadStatus("new"), "statuses are case sensitive")

	for _, p := range PropertyTypes {
		require.True(t, IsValidPropertyType(p))
	}
	require.False(t, IsValidPropertyType("Castle"))

	for _, c := range PropertyConditions {
		require.True(t, IsValidPropertyCondition(c))
	}
	require.False(t, IsValidPropertyCondition(""))

	for _, m := range ContactMethods {
		require.True(t, IsValidContactMethod(m))
	}
	require.False(t, IsValidContactMethod("Fax"))
}

func TestAdminRoles(t *testing.T) {
	require.True(t, IsValidAdminRole(RoleAdmin))
	require.True(t, IsValidAdminRole(RoleManager))
	require.True(t, IsValidAdminRole(RoleAgent))
	require.False(t, IsValidAdminRole("root"))
}
