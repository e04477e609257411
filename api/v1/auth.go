package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/middleware"
	"github.com/tradepilot-api/services"
)

// AuthController handles account endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup handles direct registration
func (ac *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ac.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles user authentication
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestOTP emails a signup code
func (ac *AuthController) RequestOTP(c *gin.Context) {
	var req dto.OTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ac.authService.RequestSignupOTP(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "OTP sent to email",
	})
}

// VerifyOTP completes an email-verified signup
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email and OTP are required",
		})
		return
	}

	resp, err := ac.authService.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCurrentUser returns the authenticated user's profile
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	profile, err := ac.authService.Profile(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   profile,
	})
}
