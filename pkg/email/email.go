package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-pestcontrol-web/config"
)

// EmailService forwards contact submissions to the company inbox via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// SubmissionEmailData holds the data for submission forwarding emails
type SubmissionEmailData struct {
	Name           string
	Phone          string
	Area           string
	PestType       string
	Message        string
	AttachmentName string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
	}
}

// submissionEmailTemplate is the HTML template for forwarded submissions
const submissionEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Pest Control Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a7a3a; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a7a3a; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Pest Control Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">District:</div>
                <div class="value">{{.Area}}</div>
            </div>
            <div class="field">
                <div class="label">Pest:</div>
                <div class="value">{{.PestType}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            {{if .AttachmentName}}
            <div class="field">
                <div class="label">Attachment:</div>
                <div class="value">{{.AttachmentName}} (stored with the submission)</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>This request was sent from the website contact form.</p>
            <p>Call the customer back at: {{.Phone}}</p>
        </div>
    </div>
</body>
</html>`

// SendSubmissionEmail forwards an accepted submission to the configured inbox
func (s *EmailService) SendSubmissionEmail(data SubmissionEmailData) error {
	tmpl, err := template.New("submission").Parse(submissionEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Pest Control Request: %s (%s)", data.PestType, data.Area)

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
