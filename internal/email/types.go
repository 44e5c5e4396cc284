package email

// Email is an outgoing message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData holds values substituted into an email template.
type TemplateData map[string]interface{}
