package services

import (
	"internlink_backend/internal/models"
	"internlink_backend/internal/repositories"
	"internlink_backend/internal/services/dto"
	"internlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, req *dto.ApplyRequest) (*models.Application, error)
	ListByUser(db *gorm.DB, userID uint) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
	}
}

// Apply - подача заявки. Повтор той же тройки (user, position, company)
// отклоняется; при гонке двух одинаковых подач конфликт репортит
// unique-индекс.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, req *dto.ApplyRequest) (*models.Application, error) {
	exists, err := s.applicationRepo.Exists(db, req.UserID, req.Position, req.Company)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		UserID:   req.UserID,
		Position: req.Position,
		Company:  req.Company,
		Status:   models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(db, app); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

func (s *ApplicationServiceImpl) ListByUser(db *gorm.DB, userID uint) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
