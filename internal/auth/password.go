package auth

import (
	"golang.org/x/crypto/bcrypt"

	"internlink_backend/pkg/apperrors"
)

// MinPasswordLength - минимальная длина нового пароля при сбросе
const MinPasswordLength = 8

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword проверяет сложность пароля
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.ErrWeakPassword
	}
	return nil
}
