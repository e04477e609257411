package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "PENDING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
)

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPending, ProjectInProgress, ProjectCompleted:
		return true
	default:
		return false
	}
}

// BidStatus returns the status a selected bid takes when its project moves to s.
// Reverting a project to PENDING puts the bid back to SUBMITTED.
func (s ProjectStatus) BidStatus() BidStatus {
	switch s {
	case ProjectInProgress:
		return BidSelected
	case ProjectCompleted:
		return BidCompleted
	default:
		return BidSubmitted
	}
}

// Project represents a buyer's work request
type Project struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	BudgetMin   float64       `json:"budgetMin" gorm:"not null"`
	BudgetMax   float64       `json:"budgetMax" gorm:"not null"`
	Deadline    time.Time     `json:"deadline" gorm:"not null"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	BuyerID     string        `json:"buyerId" gorm:"type:uuid;not null;index"`
	SellerID    *string       `json:"sellerId" gorm:"type:uuid;index"`
	SelectedBid *string       `json:"selectedBid" gorm:"column:selected_bid_id;type:uuid"`

	CompletionDocumentURL  *string    `json:"completionDocumentUrl"`
	CompletionDocumentName *string    `json:"completionDocumentName"`
	CompletionDocumentSize *int64     `json:"completionDocumentSize"`
	DocumentUploadedAt     *time.Time `json:"documentUploadedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Bids []Bid `json:"bids" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CompletionDocument is the metadata of a file uploaded when a project is completed
type CompletionDocument struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}
