package handlers

import (
	"net/http"

	"internlink_backend/internal/config"
	"internlink_backend/internal/services"
	"internlink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/forgot-password", h.ForgotPassword)
	api.POST("/verify-reset-code", h.VerifyResetCode)
	api.POST("/reset-password", h.ResetPassword)
}

// Signup - POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	user, err := h.authService.Signup(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    user,
	})
}

// Login - POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	user, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// ForgotPassword - POST /api/forgot-password.
// Ответ одинаковый для известного и неизвестного email;
// в demo-режиме код дополнительно отдается в теле ответа.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	code, issued, err := h.authService.RequestPasswordReset(db, req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := gin.H{
		"message": "If an account exists with this email, you will receive password reset instructions.",
	}
	if issued && config.GetConfig().Email.DemoMode {
		resp["demo_code"] = code
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyResetCode - POST /api/verify-reset-code
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req dto.VerifyResetCodeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.authService.VerifyResetCode(db, req.Email, req.Code); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Code verified",
	})
}

// ResetPassword - POST /api/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db, ok := h.GetDB(c)
	if !ok {
		return
	}

	if err := h.authService.ResetPassword(db, req.Email, req.Code, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset successful",
	})
}
