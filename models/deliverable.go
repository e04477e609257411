package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deliverable records the final artifact handed over for a project
type Deliverable struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;index"`
	FileURL   string    `json:"fileUrl" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Project *Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID when the caller did not provide one
func (d *Deliverable) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
