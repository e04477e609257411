// Package otpstore stages pending email-verified signups until the one-time
// code is confirmed or expires.
package otpstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no live record exists for an email
var ErrNotFound = errors.New("otp record not found")

// Record is a pending signup. Code and password are held as bcrypt hashes.
type Record struct {
	Email        string    `json:"email"`
	CodeHash     string    `json:"codeHash"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Store keeps at most one record per email. Set overwrites any existing
// record and stamps ExpiresAt from ttl.
type Store interface {
	Set(ctx context.Context, record Record, ttl time.Duration) error
	Get(ctx context.Context, email string) (*Record, error)
	Delete(ctx context.Context, email string) error
}
