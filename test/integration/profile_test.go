package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"internlink_backend/internal/models"
	"internlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestProfile_NotFound - анкеты еще нет
func TestProfile_NotFound(t *testing.T) {
	ts := GetTestServer(t)
	userID := helpers.SignupStudent(t, ts, "No", "Profile", helpers.UniqueEmail("noprofile"), "password_12345")

	res, bodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/profile/%d", userID), nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Profile not found")
	t.Logf("АНКЕТА НЕ НАЙДЕНА: Успешно. Ответ: %s", bodyStr)
}

// TestProfile_SaveAndGet - сохранение и чтение анкеты
func TestProfile_SaveAndGet(t *testing.T) {
	ts := GetTestServer(t)
	userID := helpers.SignupStudent(t, ts, "Save", "Get", helpers.UniqueEmail("saveget"), "password_12345")

	saveBody := map[string]interface{}{
		"user_id":    userID,
		"phone":      "+7 701 000 00 00",
		"university": "KBTU",
		"course":     "Computer Science",
		"year":       3,
		"gpa":        3.7,
		"skills":     "Go, SQL",
		"interests":  "Backend development",
	}
	saveRes, saveBodyStr := ts.SendRequest(t, "POST", "/api/profile", saveBody)

	assert.Equal(t, http.StatusOK, saveRes.StatusCode)
	assert.Contains(t, saveBodyStr, "KBTU")
	t.Logf("СОХРАНЕНИЕ АНКЕТЫ: Успешно. Ответ: %s", saveBodyStr)

	getRes, getBodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/profile/%d", userID), nil)

	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBodyStr, "KBTU")
	assert.Contains(t, getBodyStr, "Go, SQL")
	t.Logf("ЧТЕНИЕ АНКЕТЫ: Успешно. Ответ: %s", getBodyStr)
}

// TestProfile_Upsert - повторное сохранение перезаписывает, а не плодит строки
func TestProfile_Upsert(t *testing.T) {
	ts := GetTestServer(t)
	userID := helpers.SignupStudent(t, ts, "Up", "Sert", helpers.UniqueEmail("upsert"), "password_12345")

	first := map[string]interface{}{
		"user_id":    userID,
		"university": "KBTU",
		"year":       2,
	}
	res1, _ := ts.SendRequest(t, "POST", "/api/profile", first)
	assert.Equal(t, http.StatusOK, res1.StatusCode)

	second := map[string]interface{}{
		"user_id":    userID,
		"university": "Nazarbayev University",
		"year":       3,
	}
	res2, bodyStr2 := ts.SendRequest(t, "POST", "/api/profile", second)
	assert.Equal(t, http.StatusOK, res2.StatusCode)

	var saved struct {
		University string `json:"university"`
		Year       int    `json:"year"`
	}
	err := json.Unmarshal([]byte(bodyStr2), &saved)
	assert.NoError(t, err)
	assert.Equal(t, "Nazarbayev University", saved.University)
	assert.Equal(t, 3, saved.Year)

	var count int64
	ts.DB.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(1), count, "На пользователя должна приходиться одна строка анкеты")
	t.Logf("UPSERT: Успешно. Ответ: %s", bodyStr2)
}

// TestProfile_MissingUserID - user_id обязателен
func TestProfile_MissingUserID(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/profile", map[string]interface{}{
		"university": "KBTU",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "user_id")
	t.Logf("ВАЛИДАЦИЯ АНКЕТЫ: Успешно. Ответ: %s", bodyStr)
}
