package mail

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"gopkg.in/gomail.v2"
)

const prospectBodyTmpl = `Dear {{.FirstName}} {{.LastName}},

Thank you for submitting your information. We will review your resume and get back to you soon.
`

const staffAlertBodyTmpl = `A new lead has been submitted:

Name: {{.FirstName}} {{.LastName}}
Email: {{.Email}}
Resume: {{.ResumeS3Path}}
`

var (
	prospectTmpl   = template.Must(template.New("prospect").Parse(prospectBodyTmpl))
	staffAlertTmpl = template.Must(template.New("staff").Parse(staffAlertBodyTmpl))
)

func NewEmailSender(host string, port int, user, password, from, staffAddress string) *EmailSender {
	return &EmailSender{
		Host:         host,
		Port:         port,
		User:         user,
		Password:     password,
		From:         from,
		StaffAddress: staffAddress,
	}
}

// SendProspectConfirmation emails the prospect that the submission was
// received. Without SMTP configured the message is logged instead.
func (s *EmailSender) SendProspectConfirmation(to, firstName, lastName string) error {
	subject := fmt.Sprintf("Thank you for your interest, %s!", firstName)

	var body bytes.Buffer
	data := ProspectEmailData{FirstName: firstName, LastName: lastName}
	if err := prospectTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render prospect template: %w", err)
	}

	return s.send(to, subject, body.String())
}

// SendStaffAlert notifies the staff inbox about a new submission.
func (s *EmailSender) SendStaffAlert(email, firstName, lastName, resumePath string) error {
	var body bytes.Buffer
	data := StaffAlertData{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		ResumeS3Path: resumePath,
	}
	if err := staffAlertTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render staff alert template: %w", err)
	}

	return s.send(s.StaffAddress, "New Lead Submitted", body.String())
}

func (s *EmailSender) send(to, subject, body string) error {
	if s.Host == "" {
		// Stub mode for local development and tests.
		slog.Info("[EMAIL STUB] message not sent, SMTP not configured",
			slog.String("to", to),
			slog.String("subject", subject),
		)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
