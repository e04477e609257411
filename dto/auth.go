package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tradepilot-api/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignupRequest represents direct registration data
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=BUYER SELLER"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OTPRequest starts an email-verified signup
type OTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=BUYER SELLER"`
}

// VerifyOTPRequest completes an email-verified signup
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// UserProfile is the authenticated user's own view of their account
type UserProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            models.Role      `json:"role"`
	CreatedAt       time.Time        `json:"createdAt"`
	ProjectsCreated []models.Project `json:"projectsCreated"`
	ProjectsTaken   []models.Project `json:"projectsTaken"`
	Bids            []models.Bid     `json:"bids"`
}
