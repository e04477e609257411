package services

import (
	"context"
	"errors"

	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/repositories"
)

// BidService handles bid submission
type BidService struct {
	bids     BidRepository
	projects ProjectRepository
	users    UserRepository
}

// NewBidService creates a new bid service instance
func NewBidService(bids BidRepository, projects ProjectRepository, users UserRepository) *BidService {
	return &BidService{
		bids:     bids,
		projects: projects,
		users:    users,
	}
}

// CreateBid places a SUBMITTED bid by the calling seller. The seller's
// current name is copied onto the bid.
func (s *BidService) CreateBid(ctx context.Context, identity *Identity, req dto.CreateBidRequest) (*models.Bid, error) {
	if err := AuthorizeRole(identity, models.RoleSeller); err != nil {
		return nil, err
	}

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, req.ProjectID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound("Project not found")
	}
	if err != nil {
		return nil, internal("Failed to fetch project", err)
	}

	if project.BuyerID == identity.ID {
		return nil, forbidden("You cannot bid on your own project")
	}

	seller, err := s.users.FindByID(ctx, identity.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound("Seller not found")
	}
	if err != nil {
		return nil, internal("Failed to fetch seller", err)
	}

	bid := &models.Bid{
		ProjectID:     project.ID,
		SellerID:      seller.ID,
		SellerName:    seller.Name,
		Amount:        req.Amount,
		EstimatedTime: req.EstimatedTime,
		Message:       req.Message,
		BidStatus:     models.BidSubmitted,
	}
	if err := s.bids.Create(ctx, bid); err != nil {
		return nil, internal("Failed to create bid", err)
	}

	return bid, nil
}
