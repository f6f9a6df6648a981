package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// TemplateManager управляет шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	config    Config
}

// NewTemplateManager создает новый менеджер шаблонов
func NewTemplateManager(config Config) (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
		config:    config,
	}

	for _, name := range []string{"welcome", "password_reset"} {
		tpl, err := tm.loadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// loadTemplate загружает шаблон из файла, при отсутствии - встроенный fallback
func (tm *TemplateManager) loadTemplate(name string) (*template.Template, error) {
	if tm.config.TemplatePath != "" {
		contentPath := filepath.Join(tm.config.TemplatePath, name+".html")
		if tpl, err := template.ParseFiles(contentPath); err == nil {
			return tpl, nil
		}
	}
	return tm.getBuiltinTemplate(name)
}

// getBuiltinTemplate возвращает встроенные шаблоны
func (tm *TemplateManager) getBuiltinTemplate(name string) (*template.Template, error) {
	var tplText string

	switch name {
	case "welcome":
		tplText = welcomeTemplate
	case "password_reset":
		tplText = passwordResetTemplate
	default:
		return nil, fmt.Errorf("unknown template: %s", name)
	}

	return template.New(name).Parse(tplText)
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data interface{}) (string, error) {
	tpl, exists := tm.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

// Встроенные шаблоны как fallback
const (
	welcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to InternLink</title>
</head>
<body>
    <h1>Welcome, {{.UserName}}!</h1>
    <p>Thanks for signing up to InternLink - the student internship portal.</p>
    <p>Fill in your profile and start applying to internships right away.</p>
    <p>Questions? Contact us: {{.SupportEmail}}</p>
</body>
</html>`

	passwordResetTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password reset code</title>
</head>
<body>
    <h2>Password reset</h2>
    <p>You requested a password reset for your InternLink account.</p>
    <p>Your verification code:</p>
    <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.ResetCode}}</p>
    <p>The code stays valid until you request a new one or use it.</p>
    <p>If you did not request a reset, just ignore this email.</p>
</body>
</html>`
)
