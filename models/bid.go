package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	BidSubmitted BidStatus = "SUBMITTED"
	BidSelected  BidStatus = "SELECTED"
	BidCompleted BidStatus = "COMPLETED"
)

// Bid is a seller's offer against a project.
//
// SellerName is the seller's display name at the time the bid was placed. It
// is a snapshot and is not updated when the seller renames their account.
type Bid struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID     string    `json:"projectId" gorm:"type:uuid;not null;index"`
	SellerID      string    `json:"sellerId" gorm:"type:uuid;not null;index"`
	SellerName    string    `json:"sellerName" gorm:"not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	EstimatedTime string    `json:"estimatedTime" gorm:"not null"`
	Message       string    `json:"message" gorm:"type:text;not null"`
	BidStatus     BidStatus `json:"bidStatus" gorm:"type:varchar(20);not null;default:'SUBMITTED'"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	Seller *User `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
