package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const confirmationTemplate = `<html>
<body>
  <h2>Welcome, {{.Nickname}}</h2>
  <p>Please confirm your email address to activate your account.</p>
  <p><a href="{{.ConfirmURL}}">Confirm email</a></p>
  <p>If you did not sign up, you can ignore this message.</p>
</body>
</html>`

// TemplateManager is an in-memory TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	// Built-in templates; parse errors here are programmer errors.
	if err := tm.AddTemplate("confirmation", confirmationTemplate); err != nil {
		panic(err)
	}
	return tm
}

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
