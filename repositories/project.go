package repositories

import (
	"context"
	"time"

	"github.com/tradepilot-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// StatusTransition describes one move of a project through its lifecycle.
// BidID is nil when no bid is involved. Document is set only when a
// completion file was uploaded.
type StatusTransition struct {
	ProjectID  string
	Status     models.ProjectStatus
	BidID      *string
	Document   *models.CompletionDocument
	UploadedAt time.Time
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return translate(r.db.WithContext(ctx).Create(project).Error)
}

// FindAll retrieves all projects with their bids, newest first
func (r *ProjectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// UpdateStatus applies a transition to a project and its bid in a single
// transaction and returns the reloaded project with bids. ErrNotFound is
// returned when the project is missing or the bid does not belong to it.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, t StatusTransition) (*models.Project, error) {
	var updated models.Project

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", t.ProjectID).Error; err != nil {
			return translate(err)
		}

		var bid *models.Bid
		if t.BidID != nil {
			bid = &models.Bid{}
			if err := tx.Where("id = ? AND project_id = ?", *t.BidID, t.ProjectID).First(bid).Error; err != nil {
				return translate(err)
			}
		}

		if err := tx.Model(&models.Project{}).
			Where("id = ?", t.ProjectID).
			Updates(t.columns(bid)).Error; err != nil {
			return err
		}

		if bid != nil {
			if err := tx.Model(&models.Bid{}).
				Where("id = ?", bid.ID).
				Update("bid_status", t.Status.BidStatus()).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Bids").First(&updated, "id = ?", t.ProjectID).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// columns builds the project column changes for a transition
func (t StatusTransition) columns(bid *models.Bid) map[string]interface{} {
	cols := map[string]interface{}{
		"status":          t.Status,
		"selected_bid_id": nil,
	}

	switch {
	case t.Status == models.ProjectPending:
		cols["seller_id"] = nil
	case bid != nil:
		cols["seller_id"] = bid.SellerID
	}

	if bid != nil {
		cols["selected_bid_id"] = bid.ID
	}

	if t.Document != nil {
		cols["completion_document_url"] = t.Document.URL
		cols["completion_document_name"] = t.Document.Name
		cols["completion_document_size"] = t.Document.Size
		cols["document_uploaded_at"] = t.UploadedAt
	}

	return cols
}
