package apperrors

import (
	"net/http"
)

/*
Этот файл содержит предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// --- Auth ---

// ErrEmailAlreadyExists - email уже зарегистрирован.
// Дубликат отдаем как 400: фронт первой фазы различает только 4xx/5xx.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверный email или пароль.
// Текст одинаковый для "нет такого email" и "не сошелся хеш",
// чтобы не раскрывать, какой именно фактор не подошел.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrPortalNotAvailable - аккаунт не студенческий, портал организаций еще закрыт.
// Это не ошибка учетных данных, поэтому 403, а не 401.
var ErrPortalNotAvailable = New(
	CodeForbidden,
	"auth",
	"Organization portal coming soon in Phase 2!",
	http.StatusForbidden,
)

// ErrWeakPassword - новый пароль слишком короткий.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// ErrInvalidResetCode - код не совпал с последним невыгоревшим кодом для email.
var ErrInvalidResetCode = New(
	CodeInvalidResetCode,
	"auth",
	"Invalid or expired reset code",
	http.StatusBadRequest,
)

// --- Profile ---

// ErrProfileNotFound - профиль для user_id не заведен.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// --- Applications ---

// ErrAlreadyApplied - заявка с той же тройкой (user, position, company) уже есть.
var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"Already applied to this internship",
	http.StatusBadRequest,
)
