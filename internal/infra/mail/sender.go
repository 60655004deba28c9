package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

//go:embed templates/*
var templateFS embed.FS

func NewEmailSender(host string, port int, user, password, fromEmail, fromName string, enabled bool) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		FromEmail: fromEmail,
		FromName:  fromName,
		Enabled:   enabled,
		dialer:    gomail.NewDialer(host, port, user, password),
	}
}

// Notify renders the template named by n.TemplateID and mails it to
// n.Recipient. The inquirer is set as Reply-To.
func (s *EmailSender) Notify(ctx context.Context, n usecase.Notification) error {
	data := emailDataFrom(n.Fields)

	subject, text, html, err := render(n.TemplateID, data)
	if err != nil {
		return err
	}

	if !s.Enabled {
		log.Printf("[MAIL] smtp disabled, would send %q to %s", subject, n.Recipient)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.FromEmail, s.FromName)
	m.SetHeader("To", n.Recipient)
	if data.Email != "" {
		m.SetAddressHeader("Reply-To", data.Email, data.FullName)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send smtp email: %w", err)
	}

	log.Printf("[MAIL] notification sent to %s for inquiry %s", n.Recipient, data.ID)
	return nil
}

func emailDataFrom(fields map[string]string) InquiryEmailData {
	phone := fields["phone"]
	if phone == "" {
		phone = strings.TrimSpace(fields[entity.FieldCountryCode] + " " + fields[entity.FieldPhoneNumber])
	}
	return InquiryEmailData{
		ID:          fields["id"],
		FullName:    fields[entity.FieldFullName],
		Email:       fields[entity.FieldEmail],
		Phone:       phone,
		City:        fields[entity.FieldCity],
		Company:     fields[entity.FieldCompany],
		Description: fields[entity.FieldDescription],
		Language:    fields["language"],
		SubmittedAt: fields["submittedAt"],
	}
}

func render(templateID string, data InquiryEmailData) (subject, text, html string, err error) {
	if templateID == "" || strings.ContainsAny(templateID, "/\\.") {
		return "", "", "", fmt.Errorf("invalid email template id %q", templateID)
	}

	textTmpl, err := template.ParseFS(templateFS, "templates/"+templateID+".txt")
	if err != nil {
		return "", "", "", fmt.Errorf("unknown email template %q: %w", templateID, err)
	}
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "templates/"+templateID+".html")
	if err != nil {
		return "", "", "", fmt.Errorf("unknown email template %q: %w", templateID, err)
	}

	var subj, body, htmlBody bytes.Buffer
	if err := textTmpl.ExecuteTemplate(&subj, "subject", data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := textTmpl.Execute(&body, data); err != nil {
		return "", "", "", fmt.Errorf("render text body: %w", err)
	}
	if err := htmlTmpl.Execute(&htmlBody, data); err != nil {
		return "", "", "", fmt.Errorf("render html body: %w", err)
	}

	return strings.TrimSpace(subj.String()), body.String(), htmlBody.String(), nil
}
