package repositories

import (
	"context"

	"github.com/tradepilot-api/models"
	"gorm.io/gorm"
)

// DeliverableRepository handles database operations for deliverables
type DeliverableRepository struct {
	db *gorm.DB
}

// NewDeliverableRepository creates a new deliverable repository instance
func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

// CreateAndComplete records a deliverable and marks its project COMPLETED.
// The project's selected bid, when there is one, is completed alongside.
func (r *DeliverableRepository) CreateAndComplete(ctx context.Context, deliverable *models.Deliverable) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", deliverable.ProjectID).Error; err != nil {
			return translate(err)
		}

		if err := tx.Create(deliverable).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Project{}).
			Where("id = ?", project.ID).
			Update("status", models.ProjectCompleted).Error; err != nil {
			return err
		}

		if project.SelectedBid != nil {
			return tx.Model(&models.Bid{}).
				Where("id = ?", *project.SelectedBid).
				Update("bid_status", models.BidCompleted).Error
		}

		return nil
	})
}
