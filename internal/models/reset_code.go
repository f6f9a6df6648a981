package models

import "time"

// ResetCode - одноразовый 6-значный код для сброса пароля.
// Кодов на один email может быть несколько; валиден только самый
// свежий невыгоревший. Отдельного таймера протухания нет: старый код
// вытесняется более новым запросом.
type ResetCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index;not null" json:"email"`
	Code      string    `gorm:"type:varchar(6);not null" json:"-"`
	Consumed  bool      `gorm:"not null;default:false" json:"consumed"`
	CreatedAt time.Time `json:"created_at"`
}
