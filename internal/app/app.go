package app

import (
	"fmt"

	"internlink_backend/internal/config"
	"internlink_backend/internal/database"
	"internlink_backend/internal/email"
	"internlink_backend/internal/handlers"
	"internlink_backend/internal/logger"
	"internlink_backend/internal/middleware"
	"internlink_backend/internal/repositories"
	"internlink_backend/internal/routes"
	"internlink_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database schema up to date")

	ginRouter := SetupRouter(cfg, gormDB)

	logger.Info("InternLink student portal - phase 1")
	logger.Info("Enabled: student registration and login, password reset, profile management, application tracking")
	logger.Info("Phase 2 will add organization accounts")

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает готовый gin.Engine: сервисы, хэндлеры, middleware,
// маршруты. Вынесено из Run, чтобы интеграционные тесты поднимали
// тот же роутер поверх своей базы.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := handlers.NewAppHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	emailSender := initializeEmailSender(cfg)

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	applicationRepo := repositories.NewApplicationRepository()
	resetCodeRepo := repositories.NewResetCodeRepository()

	authService := services.NewAuthService(userRepo, resetCodeRepo, emailSender)
	profileService := services.NewProfileService(profileRepo)
	applicationService := services.NewApplicationService(applicationRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		ProfileService:     profileService,
		ApplicationService: applicationService,
		EmailSender:        emailSender,
	}
}

// initializeEmailSender выбирает реализацию отправки писем.
// Без настроенного SMTP (локальная разработка, demo) письма
// уходят в лог, а код сброса дублируется в HTTP-ответе.
func initializeEmailSender(cfg *config.Config) email.Sender {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, emails will be logged instead of sent")
		return email.NewLogSender()
	}

	sender, err := email.NewSMTPSender(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUser,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Failed to initialize SMTP sender, falling back to log sender", "error", err)
		return email.NewLogSender()
	}

	logger.Info("SMTP sender initialized", "host", cfg.Email.SMTPHost)
	return sender
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
