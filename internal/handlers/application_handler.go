package handlers

import (
	"net/http"

	"internlink_backend/internal/services"
	"internlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/applications/:userId", h.ListApplications)
	api.POST("/apply", h.Apply)
}

// ListApplications - GET /api/applications/:userId
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "userId")
	if !ok {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// Apply - POST /api/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Apply(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}
