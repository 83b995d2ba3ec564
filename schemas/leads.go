package schemas

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StatusNew           = "New"
	StatusContacted     = "Contacted"
	StatusUnderReview   = "Under Review"
	StatusOfferMade     = "Offer Made"
	StatusClosed        = "Closed"
	StatusNotInterested = "Not Interested"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var (
	LeadStatuses = []string{
		StatusNew, StatusContacted, StatusUnderReview,
		StatusOfferMade, StatusClosed, StatusNotInterested,
	}
	LeadPriorities = []string{PriorityHigh, PriorityMedium, PriorityLow}
	PropertyTypes  = []string{
		"Single Family", "Multi-Family", "Condo",
		"Townhouse", "Mobile Home", "Land",
	}
	PropertyConditions = []string{"Excellent", "Good", "Fair", "Needs Work", "Poor"}
	ContactMethods     = []string{"Phone", "Email", "Text"}
)

func IsValidLeadStatus(s string) bool        { return slices.Contains(LeadStatuses, s) }
func IsValidPropertyType(s string) bool      { return slices.Contains(PropertyTypes, s) }
func IsValidPropertyCondition(s string) bool { return slices.Contains(PropertyConditions, s) }
func IsValidContactMethod(s string) bool     { return slices.Contains(ContactMethods, s) }

// Tracking is the campaign-attribution sub-record captured at submission
// time. IPAddress and Timestamp are server-assigned, the rest comes from
// the browser form.
type Tracking struct {
	UTMSource   string    `json:"utm_source,omitempty" bson:"utm_source,omitempty"`
	UTMMedium   string    `json:"utm_medium,omitempty" bson:"utm_medium,omitempty"`
	UTMCampaign string    `json:"utm_campaign,omitempty" bson:"utm_campaign,omitempty"`
	GCLID       string    `json:"gclid,omitempty" bson:"gclid,omitempty"`
	FBCLID      string    `json:"fbclid,omitempty" bson:"fbclid,omitempty"`
	Referrer    string    `json:"referrer,omitempty" bson:"referrer,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty" bson:"user_agent,omitempty"`
	IPAddress   string    `json:"ipAddress,omitempty" bson:"ip_address,omitempty"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp,omitempty"`
}

type LeadNote struct {
	Content   string    `json:"content" bson:"content"`
	CreatedBy string    `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type StatusChange struct {
	Status    string    `json:"status" bson:"status"`
	UpdatedBy string    `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Lead struct {
	ID bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	PropertyAddress   string `json:"propertyAddress" bson:"property_address"`
	PropertyType      string `json:"propertyType" bson:"property_type"`
	PropertyCondition string `json:"propertyCondition" bson:"property_condition"`
	Bedrooms          *int   `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms         *int   `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`

	SellingReason  string `json:"sellingReason" bson:"selling_reason"`
	Timeframe      string `json:"timeframe" bson:"timeframe"`
	OweMortgage    string `json:"oweMortgage,omitempty" bson:"owe_mortgage,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty" bson:"additional_info,omitempty"`

	FullName         string `json:"fullName" bson:"full_name"`
	Email            string `json:"email" bson:"email"`
	Phone            string `json:"phone" bson:"phone"`
	PreferredContact string `json:"preferredContact" bson:"preferred_contact"`
	SMSConsent       bool   `json:"smsConsent" bson:"sms_consent"`

	Status        string         `json:"status" bson:"status"`
	Priority      string         `json:"priority" bson:"priority"`
	Source        string         `json:"source,omitempty" bson:"source,omitempty"`
	Notes         []LeadNote     `json:"notes,omitempty" bson:"notes,omitempty"`
	StatusHistory []StatusChange `json:"statusHistory,omitempty" bson:"status_history,omitempty"`
	Tracking      Tracking       `json:"tracking" bson:"tracking"`
	SubmittedAt   time.Time      `json:"submittedAt" bson:"submitted_at"`
}
