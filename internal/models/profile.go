package models

import "time"

// Profile - анкета студента, один-к-одному с User.
// Все поля свободного формата, как их присылает фронт первой фазы.
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone      string    `json:"phone"`
	University string    `json:"university"`
	Course     string    `json:"course"`
	Year       int       `json:"year"`
	GPA        float64   `gorm:"column:gpa" json:"gpa"`
	Skills     string    `json:"skills"`
	Interests  string    `json:"interests"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
