package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"internlink_backend/internal/models"
	"internlink_backend/test/helpers"

	"gorm.io/gorm"
)

// Глобальные переменные для общего состояния
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// Тесты ходят в общую in-memory sqlite и чистят таблицы перед стартом,
// поэтому параллельный запуск здесь не используется.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("DATABASE_DRIVER", "sqlite")
		os.Setenv("DATABASE_URL", "file:internlink_test?mode=memory&cache=shared")

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})

	globalTestServer.ClearTables(t)
	return globalTestServer
}

// TestMain - только глобальная инициализация и очистка
func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}

// CreateTestApplication создает заявку напрямую в БД (для проверки сортировки)
func CreateTestApplication(t *testing.T, db *gorm.DB, userID uint, position, company string, appliedAt time.Time) models.Application {
	application := models.Application{
		UserID:      userID,
		Position:    position,
		Company:     company,
		Status:      models.ApplicationStatusPending,
		DateApplied: appliedAt,
	}
	if err := db.Create(&application).Error; err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	return application
}
