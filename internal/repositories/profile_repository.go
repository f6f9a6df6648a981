package repositories

import (
	"errors"

	"internlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(db *gorm.DB, userID uint) (*models.Profile, error)
	Create(db *gorm.DB, profile *models.Profile) error
	Update(db *gorm.DB, profile *models.Profile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

// Update перезаписывает все изменяемые поля анкеты.
// updated_at gorm проставляет сам при каждом Updates.
func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.Profile) error {
	result := db.Model(&models.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"phone":      profile.Phone,
			"university": profile.University,
			"course":     profile.Course,
			"year":       profile.Year,
			"gpa":        profile.GPA,
			"skills":     profile.Skills,
			"interests":  profile.Interests,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
