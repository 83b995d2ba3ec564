package admin

import (
	"testing"

	"api/schemas"

	"github.com/stretchr/testify/require"
)

func validAdminRequest() *CreateAdminRequest {
	return &CreateAdminRequest{
		Username: "jane",
		Password: "s3cret-pw",
		Email:    "jane@example.com",
		FullName: "Jane Admin",
		Role:     schemas.RoleManager,
	}
}

func TestValidateCreateAdminAcceptsValidRequest(t *testing.T) {
	require.Empty(t, validateCreateAdmin(validAdminRequest()))

	// Role is optional; the handler defaults it.
	req := validAdminRequest()
	req.Role = ""
	require.Empty(t, validateCreateAdmin(req))
}

func TestValidateCreateAdminRequiredFields(t *testing.T) {
	errs := validateCreateAdmin(&CreateAdminRequest{})
	require.NotEmpty(t, errs)

	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}
	require.Equal(t, "Username is required", fields["username"])
	require.Equal(t, "Password must be at least 6 characters", fields["password"])
	require.Equal(t, "Valid email is required", fields["email"])
	require.Equal(t, "Full name is required", fields["fullName"])
}

func TestValidateCreateAdminShortPassword(t *testing.T) {
	req := validAdminRequest()
	req.Password = "abc"

	errs := validateCreateAdmin(req)
	require.Len(t, errs, 1)
	require.Equal(t, "password", errs[0].Field)
}

func TestValidateCreateAdminBadEmail(t *testing.T) {
	req := validAdminRequest()
	req.Email = "not-an-email"

	errs := validateCreateAdmin(req)
	require.Len(t, errs, 1)
	require.Equal(t, "email", errs[0].Field)
	require.Equal(t, "Valid email is required", errs[0].Message)
}

func TestValidateCreateAdminUnknownRole(t *testing.T) {
	req := validAdminRequest()
	req.Role = "superuser"

	errs := validateCreateAdmin(req)
	require.Len(t, errs, 1)
	require.Equal(t, "role", errs[0].Field)
	require.Equal(t, "Invalid role", errs[0].Message)
}
