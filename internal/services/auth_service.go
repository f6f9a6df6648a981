package services

import (
	"internlink_backend/internal/auth"
	"internlink_backend/internal/email"
	"internlink_backend/internal/logger"
	"internlink_backend/internal/models"
	"internlink_backend/internal/repositories"
	"internlink_backend/internal/services/dto"
	"internlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.UserResponse, error)
	// RequestPasswordReset возвращает выданный код и признак того,
	// что код реально выписан. Для неизвестного email оба значения
	// пустые, но ошибки нет - наружу уходит одинаковый ответ.
	RequestPasswordReset(db *gorm.DB, emailAddr string) (code string, issued bool, err error)
	VerifyResetCode(db *gorm.DB, emailAddr, code string) error
	ResetPassword(db *gorm.DB, emailAddr, code, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	resetCodeRepo repositories.ResetCodeRepository
	emailSender   email.Sender
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resetCodeRepo repositories.ResetCodeRepository,
	emailSender email.Sender,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		resetCodeRepo: resetCodeRepo,
		emailSender:   emailSender,
	}
}

// Signup - регистрация студента (первая фаза: только роль student)
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.UserResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleStudent,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user.Email, user.FirstName)

	return dto.NewUserResponse(user), nil
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Тот же ответ, что и при неверном пароле
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Учетные данные верны, но кабинет организаций откроется во второй фазе
	if user.Role != models.UserRoleStudent {
		return nil, apperrors.ErrPortalNotAvailable
	}

	return dto.NewUserResponse(user), nil
}

// RequestPasswordReset - выдача кода сброса пароля.
// Для несуществующего email кода не пишем и ошибку не возвращаем,
// чтобы по ответу нельзя было перебрать зарегистрированные адреса.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) (string, bool, error) {
	if _, err := s.userRepo.FindByEmail(db, emailAddr); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", false, nil
		}
		return "", false, apperrors.InternalError(err)
	}

	code, err := auth.GenerateResetCode()
	if err != nil {
		return "", false, apperrors.InternalError(err)
	}

	resetCode := &models.ResetCode{
		Email: emailAddr,
		Code:  code,
	}
	if err := s.resetCodeRepo.Create(db, resetCode); err != nil {
		return "", false, apperrors.InternalError(err)
	}

	s.sendResetCodeEmail(emailAddr, code)

	return code, true, nil
}

// VerifyResetCode - проверка кода без побочных эффектов.
// Код не выгорает: фронт может дергать проверку повторно,
// потребляет код только ResetPassword.
func (s *AuthServiceImpl) VerifyResetCode(db *gorm.DB, emailAddr, code string) error {
	if _, err := s.findValidCode(db, emailAddr, code); err != nil {
		return err
	}
	return nil
}

// ResetPassword - смена пароля по коду.
// Пометка кода выгоревшим и перезапись хеша идут в одной транзакции:
// либо код потрачен и пароль сменен, либо не произошло ничего.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, emailAddr, code, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	resetCode, err := s.findValidCode(db, emailAddr, code)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidResetCode
		}
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.resetCodeRepo.Consume(tx, resetCode.ID); err != nil {
			// Параллельный запрос успел потратить код первым
			if apperrors.Is(err, repositories.ErrResetCodeNotFound) {
				return apperrors.ErrInvalidResetCode
			}
			return err
		}
		return s.userRepo.UpdatePassword(tx, user.ID, hashedPassword)
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// findValidCode реализует правило "валиден только самый свежий
// невыгоревший код": достаем последнюю запись и сравниваем с присланной.
// Совпадение со старым кодом валидным не считается.
func (s *AuthServiceImpl) findValidCode(db *gorm.DB, emailAddr, code string) (*models.ResetCode, error) {
	latest, err := s.resetCodeRepo.FindLatestUnconsumed(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetCodeNotFound) {
			return nil, apperrors.ErrInvalidResetCode
		}
		return nil, apperrors.InternalError(err)
	}

	if latest.Code != code {
		return nil, apperrors.ErrInvalidResetCode
	}

	return latest, nil
}

// sendWelcomeEmail отправляет приветственное письмо (не блокируя ответ)
func (s *AuthServiceImpl) sendWelcomeEmail(to, name string) {
	if s.emailSender == nil {
		return
	}

	go func() {
		if err := s.emailSender.SendWelcome(to, name); err != nil {
			logger.Warn("failed to send welcome email", "error", err, "to", to)
		}
	}()
}

// sendResetCodeEmail отправляет письмо с кодом сброса (не блокируя ответ)
func (s *AuthServiceImpl) sendResetCodeEmail(to, code string) {
	if s.emailSender == nil {
		return
	}

	go func() {
		if err := s.emailSender.SendResetCode(to, code); err != nil {
			logger.Warn("failed to send reset code email", "error", err, "to", to)
		}
	}()
}
