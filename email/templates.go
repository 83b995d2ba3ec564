package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"api/schemas"
)

const confirmationHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #D32F2F; color: white; padding: 30px 20px; text-align: center; }
.content { background: #f5f5f5; padding: 30px 20px; }
.info-box { background: white; padding: 20px; margin: 20px 0; border-radius: 5px; border-left: 4px solid #D32F2F; }
.info-box h3 { margin-top: 0; color: #D32F2F; }
.label { font-weight: bold; color: #666; }
.footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
</style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Thank You for Your Submission!</h1></div>
    <div class="content">
      <h2>Hi %s,</h2>
      <p>We've received your information and will contact you within <strong>24 hours</strong> with a fair cash offer for your property.</p>
      <div class="info-box">
        <h3>What Happens Next?</h3>
        <p>1. Our team will review your property details<br>
        2. We'll prepare a fair cash offer<br>
        3. You'll receive our offer within 24 hours<br>
        4. If you accept, we can close in as little as 7 days!</p>
      </div>
      <div class="info-box">
        <h3>Your Property Information</h3>
        <div><span class="label">Property Address:</span> %s</div>
        <div><span class="label">Property Type:</span> %s</div>
        <div><span class="label">Condition:</span> %s</div>
        <div><span class="label">Preferred Contact:</span> %s</div>
      </div>
      <p>Best regards,<br><strong>The US Cash Buyers Team</strong></p>
    </div>
    <div class="footer">
      © %d US Cash Buyers | Available Nationwide<br>
      You received this email because you submitted a property for a cash offer on our website.
    </div>
  </div>
</body>
</html>`

const staffAlertHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 700px; margin: 0 auto; padding: 20px; }
.header { background: #1976D2; color: white; padding: 20px; text-align: center; }
.content { background: #f5f5f5; padding: 20px; }
.section { background: white; padding: 20px; margin: 15px 0; border-radius: 5px; }
.section h3 { margin-top: 0; color: #1976D2; border-bottom: 2px solid #1976D2; padding-bottom: 10px; }
.label { font-weight: bold; color: #666; }
</style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>New Lead Received!</h1><div>%s Priority</div></div>
    <div class="content">
      <div class="section">
        <h3>Property Information</h3>
        %s
      </div>
      <div class="section">
        <h3>Situation</h3>
        %s
      </div>
      <div class="section">
        <h3>Contact Information</h3>
        %s
      </div>
      <div class="section">
        <h3>Tracking Data</h3>
        %s
      </div>
    </div>
  </div>
</body>
</html>`

func renderConfirmation(lead *schemas.Lead) (plain, html string) {
	esc := template.HTMLEscapeString

	plain = fmt.Sprintf(
		"Hi %s,\n\nWe've received your information about %s and will contact you within 24 hours with a fair cash offer.\n\nThe US Cash Buyers Team",
		lead.FullName, lead.PropertyAddress,
	)
	html = fmt.Sprintf(confirmationHTML,
		esc(lead.FullName),
		esc(lead.PropertyAddress),
		esc(lead.PropertyType),
		esc(lead.PropertyCondition),
		esc(lead.PreferredContact),
		time.Now().Year(),
	)
	return plain, html
}

func renderStaffAlert(lead *schemas.Lead) (plain, html string) {
	property := infoRows(
		row("Address", lead.PropertyAddress),
		row("Type", lead.PropertyType),
		row("Condition", lead.PropertyCondition),
		row("Bedrooms", intOrUnspecified(lead.Bedrooms)),
		row("Bathrooms", intOrUnspecified(lead.Bathrooms)),
	)
	situation := infoRows(
		row("Reason", lead.SellingReason),
		row("Timeframe", lead.Timeframe),
		row("Mortgage", orUnspecified(lead.OweMortgage)),
		row("Additional Details", lead.AdditionalInfo),
	)
	contact := infoRows(
		row("Name", lead.FullName),
		row("Email", lead.Email),
		row("Phone", lead.Phone),
		row("Preferred Contact", lead.PreferredContact),
		row("SMS Consent", yesNo(lead.SMSConsent)),
	)
	tracking := infoRows(
		row("Source", lead.Tracking.UTMSource),
		row("Medium", lead.Tracking.UTMMedium),
		row("Campaign", lead.Tracking.UTMCampaign),
		row("GCLID", lead.Tracking.GCLID),
		row("FBCLID", lead.Tracking.FBCLID),
		row("Referrer", lead.Tracking.Referrer),
		row("IP Address", lead.Tracking.IPAddress),
		row("User Agent", lead.Tracking.UserAgent),
	)

	plain = fmt.Sprintf(
		"New lead received (%s priority)\n\nProperty: %s (%s, %s)\nSeller: %s, %s, %s\nReason: %s, timeframe: %s",
		lead.Priority, lead.PropertyAddress, lead.PropertyType, lead.PropertyCondition,
		lead.FullName, lead.Email, lead.Phone,
		lead.SellingReason, lead.Timeframe,
	)
	html = fmt.Sprintf(staffAlertHTML,
		template.HTMLEscapeString(lead.Priority),
		property, situation, contact, tracking,
	)
	return plain, html
}

type infoRow struct {
	label, value string
}

func row(label, value string) infoRow { return infoRow{label, value} }

// infoRows renders the non-empty rows of a section.
func infoRows(rows ...infoRow) string {
	var b strings.Builder
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(&b, `<div><span class="label">%s:</span> %s</div>`,
			r.label, template.HTMLEscapeString(r.value))
		b.WriteString("\n")
	}
	return b.String()
}

func intOrUnspecified(n *int) string {
	if n == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d", *n)
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
