package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// User represents a marketplace account
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never exposed in JSON
	Role      Role      `json:"role" gorm:"type:varchar(10);not null;default:'BUYER'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	ProjectsCreated []Project `json:"projectsCreated,omitempty" gorm:"foreignKey:BuyerID"`
	ProjectsTaken   []Project `json:"projectsTaken,omitempty" gorm:"foreignKey:SellerID"`
	Bids            []Bid     `json:"bids,omitempty" gorm:"foreignKey:SellerID"`
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
