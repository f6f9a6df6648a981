package services

import (
	"internlink_backend/internal/models"
	"internlink_backend/internal/repositories"
	"internlink_backend/internal/services/dto"
	"internlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	Get(db *gorm.DB, userID uint) (*models.Profile, error)
	Save(db *gorm.DB, req *dto.SaveProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
	}
}

func (s *ProfileServiceImpl) Get(db *gorm.DB, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Save - upsert анкеты по user_id.
// Проверка и запись идут в одной транзакции, чтобы два параллельных
// сохранения не породили вторую строку; unique-индекс по user_id
// подстраховывает на уровне базы.
func (s *ProfileServiceImpl) Save(db *gorm.DB, req *dto.SaveProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:     req.UserID,
		Phone:      req.Phone,
		University: req.University,
		Course:     req.Course,
		Year:       req.Year,
		GPA:        req.GPA,
		Skills:     req.Skills,
		Interests:  req.Interests,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := s.profileRepo.FindByUserID(tx, req.UserID)
		switch {
		case err == nil:
			return s.profileRepo.Update(tx, profile)
		case apperrors.Is(err, repositories.ErrProfileNotFound):
			return s.profileRepo.Create(tx, profile)
		default:
			return err
		}
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Перечитываем строку: клиент получает то, что реально лежит в базе
	saved, err := s.profileRepo.FindByUserID(db, req.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}
