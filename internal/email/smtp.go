package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"lawhub_backend/internal/config"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	dialer     *gomail.Dialer
	fromEmail  string
	fromName   string
	confirmURL string
	renderer   TemplateRenderer
}

func NewSMTPProvider(cfg config.EmailConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		confirmURL: cfg.ConfirmURL,
		renderer:   renderer,
	}
}

func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (p *SMTPProvider) SendConfirmation(ctx context.Context, to string, token string) error {
	html, err := p.renderer.Render("confirmation", TemplateData{
		"Nickname":   to,
		"ConfirmURL": fmt.Sprintf("%s?token=%s", p.confirmURL, token),
	})
	if err != nil {
		return fmt.Errorf("failed to render confirmation template: %w", err)
	}

	return p.Send(ctx, &Email{
		To:       []string{to},
		Subject:  "Confirm your email",
		HTMLBody: html,
	})
}
