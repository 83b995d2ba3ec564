package leads

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/schemas"

	"github.com/stretchr/testify/require"
)

func validSubmission() *CreateLeadRequest {
	return &CreateLeadRequest{
		PropertyAddress:   "123 Main St, Phoenix, AZ 85001",
		PropertyType:      "Single Family",
		PropertyCondition: "Good",
		SellingReason:     "Relocating",
		Timeframe:         "ASAP",
		FullName:          "Jane Seller",
		Email:             "jane@example.com",
		Phone:             "(602) 555-1234",
		PreferredContact:  "Phone",
	}
}

func TestValidateCreateLeadAcceptsValidSubmission(t *testing.T) {
	errs := ValidateCreateLead(validSubmission())
	require.Empty(t, errs)
}

func TestValidateCreateLeadRequiredFields(t *testing.T) {
	errs := ValidateCreateLead(&CreateLeadRequest{})
	require.NotEmpty(t, errs)

	messages := map[string]string{}
	for _, fe := range errs {
		messages[fe.Field] = fe.Message
	}

	require.Equal(t, "Property address is required", messages["propertyAddress"])
	require.Equal(t, "Property type is required", messages["propertyType"])
	require.Equal(t, "Selling reason is required", messages["sellingReason"])
	require.Equal(t, "Full name is required", messages["fullName"])
	require.Equal(t, "Valid email is required", messages["email"])
	require.Equal(t, "Valid 10-digit phone number is required", messages["phone"])
	require.Equal(t, "Contact preference is required", messages["preferredContact"])
}

func TestValidateCreateLeadEnums(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateLeadRequest)
		field   string
		message string
	}{
		{
			name:    "unknown property type",
			mutate:  func(r *CreateLeadRequest) { r.PropertyType = "Castle" },
			field:   "propertyType",
			message: "Invalid property type",
		},
		{
			name:    "unknown condition",
			mutate:  func(r *CreateLeadRequest) { r.PropertyCondition = "Haunted" },
			field:   "propertyCondition",
			message: "Invalid property condition",
		},
		{
			name:    "unknown contact preference",
			mutate:  func(r *CreateLeadRequest) { r.PreferredContact = "Carrier Pigeon" },
			field:   "preferredContact",
			message: "Invalid contact preference",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.mutate(req)

			errs := ValidateCreateLead(req)
			require.Len(t, errs, 1)
			require.Equal(t, tc.field, errs[0].Field)
			require.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestValidateCreateLeadShortPhone(t *testing.T) {
	req := validSubmission()
	req.Phone = "555-1234"

	errs := ValidateCreateLead(req)
	require.Len(t, errs, 1)
	require.Equal(t, "phone", errs[0].Field)
	require.Equal(t, "Valid 10-digit phone number is required", errs[0].Message)
}

func TestValidateCreateLeadNoDuplicatePhoneError(t *testing.T) {
	// Empty phone fails both required and length checks; only one error
	// per field should surface.
	req := validSubmission()
	req.Phone = ""

	errs := ValidateCreateLead(req)
	count := 0
	for _, fe := range errs {
		if fe.Field == "phone" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestCleanPhone(t *testing.T) {
	require.Equal(t, "6025551234", CleanPhone("(602) 555-1234"))
	require.Equal(t, "6025551234", CleanPhone("602.555.1234"))
	require.Equal(t, "16025551234", CleanPhone("+1 602 555 1234"))
	require.Equal(t, "", CleanPhone("abc"))
}

func TestCreateOneRejectsInvalidBody(t *testing.T) {
	h := &Handler{}

	r := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.CreateOne(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp schemas.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Invalid request data", resp.Message)
}

func TestCreateOneRejectsIncompleteSubmission(t *testing.T) {
	h := &Handler{}

	body, err := json.Marshal(map[string]string{"propertyAddress": "123 Main St"})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.CreateOne(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp schemas.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors)
}
