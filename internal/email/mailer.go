package email

import (
	"fmt"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/logger"
)

const platformName = "Talent & Beauty"

// Mailer renders domain notifications and hands them to a Provider.
// Delivery failures are logged, never returned: email is best-effort
// and must not fail the triggering request.
type Mailer struct {
	provider    Provider
	templates   *TemplateManager
	frontendURL string
	adminEmail  string
	arconEmail  string
}

func NewMailer(provider Provider, frontendURL, adminEmail, arconEmail string) *Mailer {
	return &Mailer{
		provider:    provider,
		templates:   NewTemplateManager(),
		frontendURL: frontendURL,
		adminEmail:  adminEmail,
		arconEmail:  arconEmail,
	}
}

func (m *Mailer) send(to []string, subject, templateName string, data TemplateData) {
	if m.provider == nil || len(to) == 0 {
		return
	}

	body, err := m.templates.Render(templateName, data)
	if err != nil {
		logger.GetLogger().Error("failed to render email template",
			"template", templateName, "error", err)
		return
	}

	go func() {
		if err := m.provider.Send(&Message{To: to, Subject: subject, HTMLBody: body}); err != nil {
			logger.GetLogger().Error("failed to send email",
				"template", templateName, "to", to[0], "error", err)
		}
	}()
}

func (m *Mailer) SendEmailVerification(to, name, token string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, token)
	m.send([]string{to}, "Verify your email", TemplateEmailVerification,
		TemplateData{"Name": name, "Link": link})
}

func (m *Mailer) SendPasswordSetInvite(to, name, token string) {
	link := fmt.Sprintf("%s/set-password?token=%s", m.frontendURL, token)
	m.send([]string{to}, "Activate your talent account", TemplatePasswordSet,
		TemplateData{"Name": name, "Link": link})
}

func (m *Mailer) SendPasswordReset(to, name, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)
	m.send([]string{to}, "Reset your password", TemplatePasswordReset,
		TemplateData{"Name": name, "Link": link})
}

func (m *Mailer) SendWelcome(to, name string) {
	m.send([]string{to}, "Welcome to "+platformName, TemplateWelcome,
		TemplateData{"Name": name, "Platform": platformName})
}

// SendTalentSubmittedNotice alerts the regulator and platform admins
// that a new profile awaits review.
func (m *Mailer) SendTalentSubmittedNotice(talentID, talentName, category string) {
	to := []string{}
	if m.arconEmail != "" {
		to = append(to, m.arconEmail)
	}
	if m.adminEmail != "" {
		to = append(to, m.adminEmail)
	}
	m.send(to, "New talent submission pending review", TemplateTalentSubmitted,
		TemplateData{"TalentID": talentID, "TalentName": talentName, "Category": category})
}

func (m *Mailer) SendTalentDecision(to, name, decision, reason string) {
	m.send([]string{to}, "Your profile review is complete", TemplateTalentDecision,
		TemplateData{"Name": name, "Decision": decision, "Reason": reason})
}

func (m *Mailer) SendRequestReceived(to, talentName, clientName, projectTitle string, budget float64) {
	m.send([]string{to}, "New booking request", TemplateRequestReceived,
		TemplateData{
			"Name":         talentName,
			"ClientName":   clientName,
			"ProjectTitle": projectTitle,
			"Budget":       fmt.Sprintf("%.2f", budget),
		})
}

func (m *Mailer) SendRequestResponded(to, clientName, talentName, projectTitle, status, reason string) {
	m.send([]string{to}, fmt.Sprintf("Your booking request was %s", status), TemplateRequestResponded,
		TemplateData{
			"Name":         clientName,
			"TalentName":   talentName,
			"ProjectTitle": projectTitle,
			"Status":       status,
			"Reason":       reason,
		})
}

func (m *Mailer) SendPaymentReceipt(to, name, reference, currency string, amount float64) {
	m.send([]string{to}, "Payment received", TemplatePaymentReceipt,
		TemplateData{
			"Name":      name,
			"Reference": reference,
			"Currency":  currency,
			"Amount":    fmt.Sprintf("%.2f", amount),
		})
}

// SendAdSubmittedNotice alerts the regulator and platform admins that a new
// ad awaits review.
func (m *Mailer) SendAdSubmittedNotice(adID, title, category string) {
	to := []string{}
	if m.arconEmail != "" {
		to = append(to, m.arconEmail)
	}
	if m.adminEmail != "" {
		to = append(to, m.adminEmail)
	}
	m.send(to, "New ad submission pending review", TemplateAdSubmitted,
		TemplateData{"AdID": adID, "Title": title, "Category": category})
}

func (m *Mailer) SendAdDecision(to, name, title, decision, reason string) {
	m.send([]string{to}, "Your ad review is complete", TemplateAdDecision,
		TemplateData{"Name": name, "Title": title, "Decision": decision, "Reason": reason})
}

func (m *Mailer) SendContactConfirmation(to, name, subject string) {
	m.send([]string{to}, "We received your message", TemplateContactReceived,
		TemplateData{"Name": name, "Subject": subject})
}

func (m *Mailer) SendContactAdminNotice(name, fromEmail, subject, message string) {
	if m.adminEmail == "" {
		return
	}
	m.send([]string{m.adminEmail}, "New contact message: "+subject, TemplateContactAdminNotice,
		TemplateData{"Name": name, "Email": fromEmail, "Subject": subject, "Message": message})
}
