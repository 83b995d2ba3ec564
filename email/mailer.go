package email

import (
	"api/schemas"
	"api/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends the two lead notification messages through SendGrid. Every
// send is best-effort: a failure is logged and swallowed, never retried, and
// never propagated to the submission that triggered it.
type Mailer struct {
	client      *sendgrid.Client
	from        *mail.Email
	notifyEmail string
}

func NewMailer(cfg *utils.Config) *Mailer {
	m := &Mailer{
		from:        mail.NewEmail(cfg.EmailFromName, cfg.EmailFrom),
		notifyEmail: cfg.AdminNotifyEmail,
	}
	if cfg.SendGridAPIKey == "" {
		utils.Logger.Warn("SENDGRID_API_KEY not set, lead notification emails disabled")
		return m
	}
	m.client = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	return m
}

// DispatchLeadEmails is called in its own goroutine after the lead insert
// has been acknowledged; at most one attempt per message.
func (m *Mailer) DispatchLeadEmails(lead *schemas.Lead) {
	m.sendLeadConfirmation(lead)
	m.sendStaffAlert(lead)
}

func (m *Mailer) sendLeadConfirmation(lead *schemas.Lead) {
	if m.client == nil {
		return
	}

	to := mail.NewEmail(lead.FullName, lead.Email)
	subject := "We Received Your Property Information - Cash Offer Coming Soon!"
	plain, html := renderConfirmation(lead)

	msg := mail.NewSingleEmail(m.from, subject, to, plain, html)
	if _, err := m.client.Send(msg); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send confirmation email to %s", lead.Email)
		return
	}
	utils.Logger.Infof("Confirmation email sent to %s", lead.Email)
}

func (m *Mailer) sendStaffAlert(lead *schemas.Lead) {
	if m.client == nil || m.notifyEmail == "" {
		return
	}

	to := mail.NewEmail("", m.notifyEmail)
	subject := "New Lead: " + lead.PropertyAddress
	plain, html := renderStaffAlert(lead)

	msg := mail.NewSingleEmail(m.from, subject, to, plain, html)
	if _, err := m.client.Send(msg); err != nil {
		utils.Logger.WithError(err).Error("Failed to send staff alert email")
		return
	}
	utils.Logger.Infof("Staff alert email sent for lead %s", lead.ID.Hex())
}
