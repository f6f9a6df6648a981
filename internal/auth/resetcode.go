package auth

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// ResetCodeLength - длина кода сброса пароля
const ResetCodeLength = 6

var ten = big.NewInt(10)

// GenerateResetCode генерирует равномерно случайный 6-значный код.
// Каждая цифра берется независимо из crypto/rand, ведущие нули допустимы.
func GenerateResetCode() (string, error) {
	var b strings.Builder
	b.Grow(ResetCodeLength)

	for i := 0; i < ResetCodeLength; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}
