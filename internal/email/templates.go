package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateData is the payload passed to a template at render time.
type TemplateData map[string]any

// TemplateManager renders named HTML templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		// Built-in templates are compile-time constants.
		if err := tm.AddTemplate(name, body); err != nil {
			panic(fmt.Sprintf("invalid builtin email template %q: %v", name, err))
		}
	}
	return tm
}

// Render executes a named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate registers or replaces a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

const (
	TemplateEmailVerification  = "email_verification"
	TemplatePasswordSet        = "password_set"
	TemplatePasswordReset      = "password_reset"
	TemplateWelcome            = "welcome"
	TemplateTalentSubmitted    = "talent_submitted"
	TemplateTalentDecision     = "talent_decision"
	TemplateRequestReceived    = "request_received"
	TemplateRequestResponded   = "request_responded"
	TemplatePaymentReceipt     = "payment_receipt"
	TemplateAdSubmitted        = "ad_submitted"
	TemplateAdDecision         = "ad_decision"
	TemplateContactReceived    = "contact_received"
	TemplateContactAdminNotice = "contact_admin_notice"
)

var builtinTemplates = map[string]string{
	TemplateEmailVerification: `
<h2>Verify your email</h2>
<p>Hello {{.Name}},</p>
<p>Please confirm your email address by clicking the link below. The link expires in 24 hours.</p>
<p><a href="{{.Link}}">Verify email</a></p>`,

	TemplatePasswordSet: `
<h2>Your profile was submitted</h2>
<p>Hello {{.Name}},</p>
<p>Your talent profile has been received. Set a password to activate your account and track your approval status. The link expires in 7 days.</p>
<p><a href="{{.Link}}">Set your password</a></p>`,

	TemplatePasswordReset: `
<h2>Password reset</h2>
<p>Hello {{.Name}},</p>
<p>We received a request to reset your password. The link expires in 30 minutes. If you did not ask for this, ignore this email.</p>
<p><a href="{{.Link}}">Reset password</a></p>`,

	TemplateWelcome: `
<h2>Welcome to {{.Platform}}</h2>
<p>Hello {{.Name}},</p>
<p>Your account is ready. You can now log in and get started.</p>`,

	TemplateTalentSubmitted: `
<h2>New talent submission</h2>
<p>{{.TalentName}} ({{.Category}}) submitted a profile for regulatory review.</p>
<p>Profile ID: {{.TalentID}}</p>`,

	TemplateTalentDecision: `
<h2>Your profile review is complete</h2>
<p>Hello {{.Name}},</p>
<p>Your talent profile has been <strong>{{.Decision}}</strong>.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}`,

	TemplateRequestReceived: `
<h2>New booking request</h2>
<p>Hello {{.Name}},</p>
<p>{{.ClientName}} sent you a booking request for "{{.ProjectTitle}}" with a budget of {{.Budget}}.</p>`,

	TemplateRequestResponded: `
<h2>Your booking request was {{.Status}}</h2>
<p>Hello {{.Name}},</p>
<p>{{.TalentName}} has {{.Status}} your request for "{{.ProjectTitle}}".</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}`,

	TemplatePaymentReceipt: `
<h2>Payment received</h2>
<p>Hello {{.Name}},</p>
<p>Your payment of {{.Amount}} {{.Currency}} (reference {{.Reference}}) was successful.</p>`,

	TemplateAdSubmitted: `
<h2>New ad submission</h2>
<p>"{{.Title}}" ({{.Category}}) was submitted for regulatory review.</p>
<p>Ad ID: {{.AdID}}</p>`,

	TemplateAdDecision: `
<h2>Your ad review is complete</h2>
<p>Hello {{.Name}},</p>
<p>Your ad "{{.Title}}" has been <strong>{{.Decision}}</strong>.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}`,

	TemplateContactReceived: `
<h2>We received your message</h2>
<p>Hello {{.Name}},</p>
<p>Thanks for reaching out about "{{.Subject}}". Our team will get back to you shortly.</p>`,

	TemplateContactAdminNotice: `
<h2>New contact message</h2>
<p>From: {{.Name}} ({{.Email}})</p>
<p>Subject: {{.Subject}}</p>
<p>{{.Message}}</p>`,
}
