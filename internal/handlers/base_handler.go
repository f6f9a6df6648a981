package handlers

import (
	"strconv"

	"internlink_backend/internal/validator"
	"internlink_backend/pkg/apperrors"
	"internlink_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler содержит общие зависимости и хелперы для всех обработчиков.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// GetDB достает *gorm.DB, положенный в контекст DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) (*gorm.DB, bool) {
	value, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		apperrors.HandleError(c, apperrors.New(
			apperrors.CodeInternalError,
			"server",
			"Database connection is not available",
			500,
		))
		return nil, false
	}

	db, ok := value.(*gorm.DB)
	if !ok {
		apperrors.HandleError(c, apperrors.New(
			apperrors.CodeInternalError,
			"server",
			"Database connection is not available",
			500,
		))
		return nil, false
	}

	return db, true
}

// BindAndValidateJSON - биндинг тела запроса + валидация DTO.
// При ошибке сам пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.Validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}

	return true
}

// ParseParamUint - числовой path-параметр (id и т.п.).
func (h *BaseHandler) ParseParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(value), true
}

// HandleServiceError отдает ошибку сервиса клиенту в стандартном формате.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
