package auth

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestGenerateResetCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := GenerateResetCode()
		assert.NoError(t, err)
		assert.Len(t, code, ResetCodeLength)
		for _, r := range code {
			assert.True(t, unicode.IsDigit(r), "Код должен состоять только из цифр: %s", code)
		}
		seen[code] = true
	}

	// 100 кодов из миллиона вариантов: совпадение всех подряд
	// означало бы сломанный генератор
	assert.Greater(t, len(seen), 1)
}
