package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"internlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в БД, хешируя сырой пароль.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// SignupStudent регистрирует студента через API и возвращает его id.
func SignupStudent(t *testing.T, ts *TestServer, firstName, lastName, email, password string) uint {
	body := map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/signup", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	var signupResponse struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	err := json.Unmarshal([]byte(bodyStr), &signupResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotZero(t, signupResponse.User.ID, "id пользователя не должен быть нулевым")

	return signupResponse.User.ID
}

// UniqueEmail генерирует уникальный email для теста.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RequestResetCode дергает forgot-password и возвращает demo_code из ответа.
func RequestResetCode(t *testing.T, ts *TestServer, email string) string {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/forgot-password", map[string]interface{}{
		"email": email,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "forgot-password должен отвечать 200. Ответ: "+bodyStr)

	var resp struct {
		DemoCode string `json:"demo_code"`
	}
	err := json.Unmarshal([]byte(bodyStr), &resp)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, resp.DemoCode, "В demo-режиме код должен возвращаться в ответе")

	return resp.DemoCode
}
