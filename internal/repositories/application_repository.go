package repositories

import (
	"errors"

	"internlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationExists = errors.New("application already exists")

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	Exists(db *gorm.DB, userID uint, position, company string) (bool, error)
	ListByUserID(db *gorm.DB, userID uint) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		// Композитный unique-индекс по (user_id, position, company)
		// превращает гонку параллельных подач в конфликт, а не в дубль
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Exists(db *gorm.DB, userID uint, position, company string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ? AND position = ? AND company = ?", userID, position, company).
		Count(&count).Error
	return count > 0, err
}

// ListByUserID возвращает заявки пользователя, свежие первыми
func (r *ApplicationRepositoryImpl) ListByUserID(db *gorm.DB, userID uint) ([]models.Application, error) {
	// Не nil, чтобы пустой список сериализовался как [], а не null
	apps := make([]models.Application, 0)
	err := db.Where("user_id = ?", userID).
		Order("date_applied DESC").
		Find(&apps).Error
	return apps, err
}
