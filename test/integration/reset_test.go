package integration_test

import (
	"net/http"
	"testing"
	"unicode"

	"internlink_backend/internal/models"
	"internlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// wrongCode возвращает код, гарантированно отличающийся от переданного.
func wrongCode(code string) string {
	if code[0] == '0' {
		return "1" + code[1:]
	}
	return "0" + code[1:]
}

// TestForgotPassword_UnknownEmail - ответ не выдает, зарегистрирован ли email
func TestForgotPassword_UnknownEmail(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/forgot-password", map[string]interface{}{
		"email": "nobody@test.com",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "If an account exists with this email")
	assert.NotContains(t, bodyStr, "demo_code")

	// Для неизвестного email код не выписывается вовсе
	var count int64
	ts.DB.Model(&models.ResetCode{}).Where("email = ?", "nobody@test.com").Count(&count)
	assert.Equal(t, int64(0), count)
	t.Logf("НЕИЗВЕСТНЫЙ EMAIL: Успешно. Ответ: %s", bodyStr)
}

// TestPasswordResetFlow - полный happy path: код, проверка, смена пароля
func TestPasswordResetFlow(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("reset")
	helpers.SignupStudent(t, ts, "Reset", "Flow", email, "old_password123")

	// 1. Запрашиваем код
	code := helpers.RequestResetCode(t, ts, email)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, unicode.IsDigit(r), "Код должен состоять только из цифр: %s", code)
	}

	// 2. Проверка кода без побочных эффектов - можно дергать повторно
	for i := 0; i < 2; i++ {
		verRes, verBodyStr := ts.SendRequest(t, "POST", "/api/verify-reset-code", map[string]interface{}{
			"email": email,
			"code":  code,
		})
		assert.Equal(t, http.StatusOK, verRes.StatusCode, "Проверка #%d: %s", i+1, verBodyStr)
	}

	// 3. Смена пароля
	resetRes, resetBodyStr := ts.SendRequest(t, "POST", "/api/reset-password", map[string]interface{}{
		"email":        email,
		"code":         code,
		"new_password": "new_password456",
	})
	assert.Equal(t, http.StatusOK, resetRes.StatusCode)
	assert.Contains(t, resetBodyStr, "Password reset successful")

	// 4. Старый пароль больше не работает, новый - работает
	oldRes, _ := ts.SendRequest(t, "POST", "/api/login", map[string]interface{}{
		"email":    email,
		"password": "old_password123",
	})
	assert.Equal(t, http.StatusUnauthorized, oldRes.StatusCode)

	newRes, newBodyStr := ts.SendRequest(t, "POST", "/api/login", map[string]interface{}{
		"email":    email,
		"password": "new_password456",
	})
	assert.Equal(t, http.StatusOK, newRes.StatusCode, "Логин с новым паролем: %s", newBodyStr)

	// 5. Код одноразовый: повторная смена по нему же отклоняется
	reuseRes, reuseBodyStr := ts.SendRequest(t, "POST", "/api/reset-password", map[string]interface{}{
		"email":        email,
		"code":         code,
		"new_password": "another_password789",
	})
	assert.Equal(t, http.StatusBadRequest, reuseRes.StatusCode)
	assert.Contains(t, reuseBodyStr, "Invalid or expired reset code")
	t.Logf("СБРОС ПАРОЛЯ: Полный цикл пройден")
}

// TestResetCode_Supersession - новый код вытесняет старый
func TestResetCode_Supersession(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("supersede")
	helpers.SignupStudent(t, ts, "Super", "Sede", email, "password_12345")

	oldCode := helpers.RequestResetCode(t, ts, email)
	newCode := helpers.RequestResetCode(t, ts, email)

	if oldCode == newCode {
		t.Skip("Коды совпали, вытеснение по значению не различить")
	}

	oldRes, oldBodyStr := ts.SendRequest(t, "POST", "/api/verify-reset-code", map[string]interface{}{
		"email": email,
		"code":  oldCode,
	})
	assert.Equal(t, http.StatusBadRequest, oldRes.StatusCode, "Старый код должен быть отклонен: %s", oldBodyStr)

	newRes, newBodyStr := ts.SendRequest(t, "POST", "/api/verify-reset-code", map[string]interface{}{
		"email": email,
		"code":  newCode,
	})
	assert.Equal(t, http.StatusOK, newRes.StatusCode, "Свежий код должен приниматься: %s", newBodyStr)
	t.Logf("ВЫТЕСНЕНИЕ КОДА: Успешно")
}

// TestVerifyResetCode_WrongCode - чужой код отклоняется
func TestVerifyResetCode_WrongCode(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("wrongcode")
	helpers.SignupStudent(t, ts, "Wrong", "Code", email, "password_12345")

	code := helpers.RequestResetCode(t, ts, email)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/verify-reset-code", map[string]interface{}{
		"email": email,
		"code":  wrongCode(code),
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid or expired reset code")
	t.Logf("НЕВЕРНЫЙ КОД: Успешно. Ответ: %s", bodyStr)
}

// TestResetPassword_ShortPassword - короткий пароль не тратит код
func TestResetPassword_ShortPassword(t *testing.T) {
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("shortpass")
	helpers.SignupStudent(t, ts, "Short", "Pass", email, "password_12345")

	code := helpers.RequestResetCode(t, ts, email)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/reset-password", map[string]interface{}{
		"email":        email,
		"code":         code,
		"new_password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Password must be at least 8 characters long")

	// Код остался валидным: попытка не дошла до его потребления
	verRes, verBodyStr := ts.SendRequest(t, "POST", "/api/verify-reset-code", map[string]interface{}{
		"email": email,
		"code":  code,
	})
	assert.Equal(t, http.StatusOK, verRes.StatusCode, "Код должен остаться рабочим: %s", verBodyStr)
	t.Logf("КОРОТКИЙ ПАРОЛЬ: Успешно. Ответ: %s", bodyStr)
}
