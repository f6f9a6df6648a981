package handlers

import (
	"net/http"

	"internlink_backend/internal/services"
	"internlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/profile/:userId", h.GetProfile)
	api.POST("/profile", h.SaveProfile)
}

// GetProfile - GET /api/profile/:userId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "userId")
	if !ok {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveProfile - POST /api/profile (создание или перезапись анкеты)
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req dto.SaveProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Save(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
