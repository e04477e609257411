package services

import (
	"context"
	"errors"

	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/repositories"
)

// DeliverableService records final deliverables
type DeliverableService struct {
	deliverables DeliverableRepository
}

// NewDeliverableService creates a new deliverable service instance
func NewDeliverableService(deliverables DeliverableRepository) *DeliverableService {
	return &DeliverableService{deliverables: deliverables}
}

// UploadDeliverable records a deliverable and completes its project together
// with the project's selected bid
func (s *DeliverableService) UploadDeliverable(ctx context.Context, req dto.CreateDeliverableRequest) (*models.Deliverable, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	deliverable := &models.Deliverable{
		ProjectID: req.ProjectID,
		FileURL:   req.FileURL,
	}

	err := s.deliverables.CreateAndComplete(ctx, deliverable)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound("Project not found")
	}
	if err != nil {
		return nil, internal("Failed to upload deliverable", err)
	}

	return deliverable, nil
}
