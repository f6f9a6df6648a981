package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Аутентификация и доступ
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidResetCode   ErrorCode = "INVALID_RESET_CODE"
	CodeForbidden          ErrorCode = "FORBIDDEN"
)
