package email

// Config конфигурация email сервиса
type Config struct {
	SMTPHost     string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	TemplatePath string
}

// TemplateData базовая структура для данных шаблонов
type TemplateData struct {
	UserName     string
	Subject      string
	Message      string
	ResetCode    string
	SupportEmail string
}

// Sender интерфейс для отправки писем.
// Продакшен-реализация ходит в SMTP; в demo-режиме используется
// LogSender, а код сброса дублируется в HTTP-ответе.
type Sender interface {
	SendWelcome(to, name string) error
	SendResetCode(to, code string) error
}
