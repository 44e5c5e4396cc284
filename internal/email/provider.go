package email

import "context"

// Provider sends transactional mail. The SMTP implementation is used in
// production; tests and local development run the mock.
type Provider interface {
	// Send delivers a single message.
	Send(ctx context.Context, email *Email) error

	// SendConfirmation sends the signup confirmation message with the
	// account's confirm token embedded in the link.
	SendConfirmation(ctx context.Context, to string, token string) error
}

// TemplateRenderer renders named templates into HTML bodies.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}
