package integration_test

import (
	"net/http"
	"testing"

	"internlink_backend/internal/models"
	"internlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestSignupAndLogin - проверяет "золотой путь" регистрации и логина
func TestSignupAndLogin(t *testing.T) {
	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)
	email := helpers.UniqueEmail("student")

	signupBody := map[string]interface{}{
		"first_name": "Aruzhan",
		"last_name":  "Seitkali",
		"email":      email,
		"password":   "super_password123",
	}

	// 2. Действие: Регистрация (Act)
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/signup", signupBody)

	// 3. Проверка: Регистрация (Assert)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Signup successful")
	assert.Contains(t, regBodyStr, `"user_type":"student"`)
	// Хеш пароля не должен утекать в ответ ни в каком виде
	assert.NotContains(t, regBodyStr, "password")
	assert.NotContains(t, regBodyStr, "$2a$")
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBodyStr)

	// --- Шаг 2: Логин ---
	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/login", loginBody)

	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Login successful")
	assert.NotContains(t, logBodyStr, "$2a$")
	t.Logf("ЛОГИН: Успешно. Ответ: %s", logBodyStr)
}

// TestSignup_DuplicateEmail - повторная регистрация не плодит строк
func TestSignup_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		FirstName:    "User",
		LastName:     "One",
		Email:        "duplicate@test.com",
		PasswordHash: "pass12345",
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"first_name": "User",
		"last_name":  "Two",
		"email":      "duplicate@test.com",
		"password":   "password_is_long_enough_123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/signup", duplicateBody)

	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Email already registered")

	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", "duplicate@test.com").Count(&count)
	assert.Equal(t, int64(1), count, "В БД должна остаться ровно одна строка")
	t.Logf("ДУБЛИКАТ EMAIL: Успешно. Ответ: %s", regBodyStr)
}

// TestSignup_MissingFields - валидация обязательных полей
func TestSignup_MissingFields(t *testing.T) {
	ts := GetTestServer(t)

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/signup", map[string]interface{}{
		"first_name": "Only",
		"email":      "only@test.com",
	})

	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "last_name")
	assert.Contains(t, regBodyStr, "password")
	t.Logf("ВАЛИДАЦИЯ: Успешно. Ответ: %s", regBodyStr)
}

// TestLogin_BadCredentials - неверный пароль и несуществующий email
// должны давать неотличимые ответы
func TestLogin_BadCredentials(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        "user@test.com",
		PasswordHash: "correct-password",
	})
	assert.NoError(t, err)

	wrongPassRes, wrongPassBody := ts.SendRequest(t, "POST", "/api/login", map[string]interface{}{
		"email":    "user@test.com",
		"password": "wrong-password",
	})
	unknownRes, unknownBody := ts.SendRequest(t, "POST", "/api/login", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.Contains(t, wrongPassBody, "Invalid email or password")
	// Тело не должно выдавать, существует ли аккаунт
	assert.Equal(t, wrongPassBody, unknownBody)
	t.Logf("НЕВЕРНЫЕ ДАННЫЕ: Успешно. Ответ: %s", wrongPassBody)
}

// TestLogin_OrganizationRole - кабинет организаций еще не открыт
func TestLogin_OrganizationRole(t *testing.T) {
	ts := GetTestServer(t)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		FirstName:    "Acme",
		LastName:     "HR",
		Email:        "org@test.com",
		PasswordHash: "org-password",
		Role:         models.UserRoleOrganization,
	})
	assert.NoError(t, err)

	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/login", map[string]interface{}{
		"email":    "org@test.com",
		"password": "org-password",
	})

	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Organization portal coming soon in Phase 2!")
	t.Logf("РОЛЬ ORGANIZATION: Успешно провалился (403). Ответ: %s", logBodyStr)
}
