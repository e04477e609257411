package repositories

import (
	"context"

	"github.com/tradepilot-api/models"
	"gorm.io/gorm"
)

// BidRepository handles database operations for bids
type BidRepository struct {
	db *gorm.DB
}

// NewBidRepository creates a new bid repository instance
func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

// Create inserts a new bid
func (r *BidRepository) Create(ctx context.Context, bid *models.Bid) error {
	return translate(r.db.WithContext(ctx).Create(bid).Error)
}

// FindByProject retrieves the bids placed on a project with their sellers
func (r *BidRepository) FindByProject(ctx context.Context, projectID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Preload("Seller", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role", "created_at", "updated_at")
		}).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&bids).Error
	return bids, err
}
