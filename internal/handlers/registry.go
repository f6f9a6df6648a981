package handlers

import (
	"internlink_backend/internal/services"
	"internlink_backend/internal/validator"
)

// AppHandlers собирает все обработчики приложения.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Application *ApplicationHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:        NewAuthHandler(base, sc.AuthService),
		Profile:     NewProfileHandler(base, sc.ProfileService),
		Application: NewApplicationHandler(base, sc.ApplicationService),
	}
}
