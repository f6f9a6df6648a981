package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender реализация Sender поверх gomail
type SMTPSender struct {
	config    Config
	templates *TemplateManager
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(config Config) (Sender, error) {
	if config.SMTPHost == "" || config.FromEmail == "" {
		return nil, fmt.Errorf("invalid email config: smtp host and from address are required")
	}

	tm, err := NewTemplateManager(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
	}, nil
}

// SendWelcome отправляет приветственное письмо после регистрации
func (s *SMTPSender) SendWelcome(to, name string) error {
	data := TemplateData{
		UserName:     name,
		Subject:      "Welcome to InternLink!",
		SupportEmail: s.config.FromEmail,
	}
	return s.sendTemplate(to, "Welcome to InternLink!", "welcome", data)
}

// SendResetCode отправляет письмо с кодом сброса пароля
func (s *SMTPSender) SendResetCode(to, code string) error {
	data := TemplateData{
		Subject:   "Your InternLink password reset code",
		ResetCode: code,
	}
	return s.sendTemplate(to, "Your InternLink password reset code", "password_reset", data)
}

// sendTemplate рендерит шаблон и отправляет письмо
func (s *SMTPSender) sendTemplate(to, subject, templateName string, data interface{}) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		s.config.SMTPHost,
		s.config.SMTPPort,
		s.config.Username,
		s.config.Password,
	)

	return d.DialAndSend(m)
}
