package repositories

import (
	"errors"

	"internlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResetCodeNotFound = errors.New("reset code not found")

type ResetCodeRepository interface {
	Create(db *gorm.DB, code *models.ResetCode) error
	// FindLatestUnconsumed возвращает самый свежий невыгоревший код для email.
	// Более старые невыгоревшие коды считаются вытесненными и невалидны.
	FindLatestUnconsumed(db *gorm.DB, email string) (*models.ResetCode, error)
	// Consume помечает конкретную запись выгоревшей. Возвращает
	// ErrResetCodeNotFound, если запись уже выгорела (двойное использование).
	Consume(db *gorm.DB, id uint) error
}

type ResetCodeRepositoryImpl struct{}

func NewResetCodeRepository() ResetCodeRepository {
	return &ResetCodeRepositoryImpl{}
}

func (r *ResetCodeRepositoryImpl) Create(db *gorm.DB, code *models.ResetCode) error {
	return db.Create(code).Error
}

func (r *ResetCodeRepositoryImpl) FindLatestUnconsumed(db *gorm.DB, email string) (*models.ResetCode, error) {
	var code models.ResetCode
	err := db.Where("email = ? AND consumed = ?", email, false).
		Order("created_at DESC, id DESC").
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetCodeNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (r *ResetCodeRepositoryImpl) Consume(db *gorm.DB, id uint) error {
	// Условие consumed = false делает пометку идемпотентно-безопасной:
	// второй запрос с тем же кодом получает 0 затронутых строк
	result := db.Model(&models.ResetCode{}).
		Where("id = ? AND consumed = ?", id, false).
		Update("consumed", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetCodeNotFound
	}
	return nil
}
