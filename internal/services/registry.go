package services

import (
	"internlink_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	ApplicationService ApplicationService
	EmailSender        email.Sender
}
