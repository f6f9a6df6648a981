package models

import "time"

// Application - заявка студента на стажировку.
// Тройка (user_id, position, company) уникальна: повторная подача
// отклоняется, а не мержится. Индекс в базе закрывает гонку
// check-then-insert между параллельными запросами.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;uniqueIndex:idx_applications_user_position_company" json:"user_id"`
	Position    string            `gorm:"not null;uniqueIndex:idx_applications_user_position_company" json:"position"`
	Company     string            `gorm:"not null;uniqueIndex:idx_applications_user_position_company" json:"company"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	DateApplied time.Time         `gorm:"autoCreateTime" json:"date_applied"`
}
