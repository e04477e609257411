package services

import (
	"context"

	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/repositories"
)

// UserRepository is the persistence the auth and bid services need.
// Lookups return repositories.ErrNotFound when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindProfile(ctx context.Context, id string) (*models.User, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindAll(ctx context.Context) ([]models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	UpdateStatus(ctx context.Context, t repositories.StatusTransition) (*models.Project, error)
}

type BidRepository interface {
	Create(ctx context.Context, bid *models.Bid) error
	FindByProject(ctx context.Context, projectID string) ([]models.Bid, error)
}

type DeliverableRepository interface {
	CreateAndComplete(ctx context.Context, deliverable *models.Deliverable) error
}

var (
	_ UserRepository        = (*repositories.UserRepository)(nil)
	_ ProjectRepository     = (*repositories.ProjectRepository)(nil)
	_ BidRepository         = (*repositories.BidRepository)(nil)
	_ DeliverableRepository = (*repositories.DeliverableRepository)(nil)
)
