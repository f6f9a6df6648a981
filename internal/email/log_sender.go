package email

import "internlink_backend/internal/logger"

// LogSender - реализация Sender для demo-режима и тестов:
// ничего не шлет, пишет письмо в лог. Код сброса в этом режиме
// фронт получает прямо в ответе /api/forgot-password.
type LogSender struct{}

func NewLogSender() Sender {
	return &LogSender{}
}

func (s *LogSender) SendWelcome(to, name string) error {
	logger.Info("email (demo mode): welcome", "to", to, "name", name)
	return nil
}

func (s *LogSender) SendResetCode(to, code string) error {
	logger.Info("email (demo mode): password reset code", "to", to, "code", code)
	return nil
}
