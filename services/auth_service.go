package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/lib/mailer"
	"github.com/tradepilot-api/lib/otpstore"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/repositories"
	"github.com/tradepilot-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost = bcrypt.DefaultCost
	otpCost      = bcrypt.MinCost
	otpLength    = 4
)

// AuthService handles signup, login and email-verified registration
type AuthService struct {
	users  UserRepository
	tokens *TokenService
	otps   otpstore.Store
	mailer mailer.Mailer
	otpTTL time.Duration
	now    func() time.Time
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserRepository, tokens *TokenService, otps otpstore.Store, m mailer.Mailer, otpTTL time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		otps:   otps,
		mailer: m,
		otpTTL: otpTTL,
		now:    time.Now,
	}
}

// Signup creates a new user account and signs it in
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, internal("Failed to check email", err)
	}
	if exists {
		return nil, conflict("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		return nil, internal("Failed to hash password", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     models.Role(req.Role),
	}
	if err := s.createUser(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound("User not found")
	}
	if err != nil {
		return nil, internal("Failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, unauthorized("Invalid credentials")
	}

	return s.authResponse(user)
}

// RequestSignupOTP stages a pending signup and emails a one-time code.
// A new request for the same email replaces the previous one.
func (s *AuthService) RequestSignupOTP(ctx context.Context, req dto.OTPRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return internal("Failed to check email", err)
	}
	if exists {
		return conflict("Email already registered")
	}

	code, err := utils.GenerateNumericCode(otpLength)
	if err != nil {
		return internal("Failed to generate OTP", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), otpCost)
	if err != nil {
		return internal("Failed to hash OTP", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		return internal("Failed to hash password", err)
	}

	record := otpstore.Record{
		Email:        req.Email,
		CodeHash:     string(codeHash),
		Name:         req.Name,
		PasswordHash: string(passwordHash),
		Role:         req.Role,
	}
	if err := s.otps.Set(ctx, record, s.otpTTL); err != nil {
		return internal("Failed to store OTP", err)
	}

	msg := mailer.Message{
		To:      req.Email,
		Subject: "Your TradePilot verification code",
		Body: fmt.Sprintf("Hi %s,\n\nYour verification code is %s. It expires in %d minutes.\n",
			req.Name, code, int(s.otpTTL.Minutes())),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		if delErr := s.otps.Delete(ctx, req.Email); delErr != nil {
			log.Printf("⚠️ Failed to clear OTP for %s: %v", req.Email, delErr)
		}
		return internal("Failed to send OTP", err)
	}

	return nil
}

// VerifyOTP confirms a staged signup, creating the account on first use
func (s *AuthService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, validationError("Email and OTP are required")
	}

	record, err := s.otps.Get(ctx, req.Email)
	if errors.Is(err, otpstore.ErrNotFound) {
		return nil, validationError("OTP not found or expired")
	}
	if err != nil {
		return nil, internal("Failed to load OTP", err)
	}

	if record.CodeHash == "" {
		return nil, validationError("Invalid OTP record")
	}

	if !s.now().Before(record.ExpiresAt) {
		_ = s.otps.Delete(ctx, req.Email)
		return nil, validationError("OTP not found or expired")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(req.OTP)); err != nil {
		return nil, unauthorized("Invalid OTP")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		user = &models.User{
			Name:     record.Name,
			Email:    record.Email,
			Password: record.PasswordHash,
			Role:     models.Role(record.Role),
		}
		if err := s.createUser(ctx, user); err != nil {
			var se *Error
			if !errors.As(err, &se) || se.Kind != KindConflict {
				return nil, err
			}
			// Verified concurrently by another request
			if user, err = s.users.FindByEmail(ctx, req.Email); err != nil {
				return nil, internal("Failed to load user", err)
			}
		}
	case err != nil:
		return nil, internal("Failed to load user", err)
	}

	resp, err := s.authResponse(user)
	if err != nil {
		return nil, err
	}

	if err := s.otps.Delete(ctx, req.Email); err != nil {
		log.Printf("⚠️ Failed to clear OTP for %s: %v", req.Email, err)
	}

	return resp, nil
}

// Profile returns the account of an authenticated user
func (s *AuthService) Profile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := s.users.FindProfile(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound("User not found")
	}
	if err != nil {
		return nil, internal("Failed to load profile", err)
	}

	profile := &dto.UserProfile{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		CreatedAt:       user.CreatedAt,
		ProjectsCreated: withBids(user.ProjectsCreated),
		ProjectsTaken:   withBids(user.ProjectsTaken),
		Bids:            user.Bids,
	}
	if profile.Bids == nil {
		profile.Bids = []models.Bid{}
	}

	return profile, nil
}

func (s *AuthService) createUser(ctx context.Context, user *models.User) error {
	err := s.users.Create(ctx, user)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		return conflict("Email already registered")
	}
	if err != nil {
		return internal("Failed to create user", err)
	}
	return nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      *user,
		ExpiresAt: expiresAt,
	}, nil
}
