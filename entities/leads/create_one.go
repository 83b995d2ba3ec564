package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"api/database"
	"api/schemas"
	"api/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateLeadRequest is the public submission payload.
type CreateLeadRequest struct {
	PropertyAddress   string `json:"propertyAddress" validate:"required"`
	PropertyType      string `json:"propertyType" validate:"required"`
	PropertyCondition string `json:"propertyCondition" validate:"required"`
	Bedrooms          *int   `json:"bedrooms"`
	Bathrooms         *int   `json:"bathrooms"`

	SellingReason  string `json:"sellingReason" validate:"required"`
	Timeframe      string `json:"timeframe" validate:"required"`
	OweMortgage    string `json:"oweMortgage"`
	AdditionalInfo string `json:"additionalInfo"`

	FullName         string `json:"fullName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	PreferredContact string `json:"preferredContact" validate:"required"`
	SMSConsent       bool   `json:"smsConsent"`

	Source   string          `json:"source"`
	Tracking TrackingRequest `json:"tracking"`
}

// TrackingRequest is the browser-captured attribution sub-object. The
// server overwrites ipAddress and timestamp with request-derived values.
type TrackingRequest struct {
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	GCLID       string `json:"gclid"`
	FBCLID      string `json:"fbclid"`
	Referrer    string `json:"referrer"`
	UserAgent   string `json:"userAgent"`
}

type CreateLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"leadId"`
}

var nonDigits = regexp.MustCompile(`\D`)

// CleanPhone strips formatting so only digits are stored.
func CleanPhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

var requiredMessages = map[string]string{
	"PropertyAddress":   "Property address is required",
	"PropertyType":      "Property type is required",
	"PropertyCondition": "Property condition is required",
	"SellingReason":     "Selling reason is required",
	"Timeframe":         "Timeframe is required",
	"FullName":          "Full name is required",
	"Email":             "Valid email is required",
	"Phone":             "Valid 10-digit phone number is required",
	"PreferredContact":  "Contact preference is required",
}

var fieldJSONNames = map[string]string{
	"PropertyAddress":   "propertyAddress",
	"PropertyType":      "propertyType",
	"PropertyCondition": "propertyCondition",
	"SellingReason":     "sellingReason",
	"Timeframe":         "timeframe",
	"FullName":          "fullName",
	"Email":             "email",
	"Phone":             "phone",
	"PreferredContact":  "preferredContact",
}

// ValidateCreateLead applies the required-field, format and enumeration
// checks, returning field-level errors in submission order.
func ValidateCreateLead(req *CreateLeadRequest) []schemas.FieldError {
	var errs []schemas.FieldError
	seen := map[string]bool{}

	add := func(field, message string) {
		if seen[field] {
			return
		}
		seen[field] = true
		errs = append(errs, schemas.FieldError{Field: field, Message: message})
	}

	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				add(fieldJSONNames[fe.Field()], requiredMessages[fe.Field()])
			}
		} else {
			add("body", "Invalid request data")
		}
	}

	if req.PropertyType != "" && !schemas.IsValidPropertyType(req.PropertyType) {
		add("propertyType", "Invalid property type")
	}
	if req.PropertyCondition != "" && !schemas.IsValidPropertyCondition(req.PropertyCondition) {
		add("propertyCondition", "Invalid property condition")
	}
	if req.PreferredContact != "" && !schemas.IsValidContactMethod(req.PreferredContact) {
		add("preferredContact", "Invalid contact preference")
	}
	if req.Phone != "" && len(CleanPhone(req.Phone)) < 10 {
		add("phone", "Valid 10-digit phone number is required")
	}

	return errs
}

// CreateOne handles the public lead submission. The insert must be
// acknowledged before notifications are attempted; notification failure
// never fails the request.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	req := &CreateLeadRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	if errs := ValidateCreateLead(req); len(errs) > 0 {
		utils.SendValidationErrors(w, errs)
		return
	}

	now := time.Now()
	source := req.Source
	if source == "" {
		source = "website_form"
	}

	lead := &schemas.Lead{
		PropertyAddress:   strings.TrimSpace(req.PropertyAddress),
		PropertyType:      req.PropertyType,
		PropertyCondition: req.PropertyCondition,
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		SellingReason:     strings.TrimSpace(req.SellingReason),
		Timeframe:         strings.TrimSpace(req.Timeframe),
		OweMortgage:       strings.TrimSpace(req.OweMortgage),
		AdditionalInfo:    strings.TrimSpace(req.AdditionalInfo),
		FullName:          strings.TrimSpace(req.FullName),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             CleanPhone(req.Phone),
		PreferredContact:  req.PreferredContact,
		SMSConsent:        req.SMSConsent,
		Status:            schemas.StatusNew,
		Priority:          schemas.PriorityMedium,
		Source:            source,
		Tracking: schemas.Tracking{
			UTMSource:   req.Tracking.UTMSource,
			UTMMedium:   req.Tracking.UTMMedium,
			UTMCampaign: req.Tracking.UTMCampaign,
			GCLID:       req.Tracking.GCLID,
			FBCLID:      req.Tracking.FBCLID,
			Referrer:    req.Tracking.Referrer,
			UserAgent:   req.Tracking.UserAgent,
			IPAddress:   utils.ClientIP(r),
			Timestamp:   now,
		},
		SubmittedAt: now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	result, err := h.store.Leads().InsertOne(ctx, lead)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to insert lead")
		utils.SendResponse(w, http.StatusInternalServerError,
			"An error occurred while submitting your information. Please try again.", nil)
		return
	}
	lead.ID = result.InsertedID.(bson.ObjectID)

	go h.mailer.DispatchLeadEmails(lead)
	go h.feed.Broadcast(lead)

	utils.SendJSON(w, http.StatusCreated, CreateLeadResponse{
		Success: true,
		Message: "Lead submitted successfully",
		LeadID:  lead.ID.Hex(),
	})
}
