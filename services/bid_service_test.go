package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/testutils"
)

func TestBidService_CreateBid(t *testing.T) {
	db := testutils.NewMemoryDB()
	svc := NewBidService(db.Bids(), db.Projects(), db.Users())
	ctx := context.Background()

	buyer := db.SeedUser(models.User{Name: "Ann", Email: "ann@example.com", Role: models.RoleBuyer})
	seller := db.SeedUser(models.User{Name: "Sam", Email: "sam@example.com", Role: models.RoleSeller})
	project := db.SeedProject(models.Project{Title: "Logo", BuyerID: buyer.ID})

	req := dto.CreateBidRequest{ProjectID: project.ID, Amount: 150, EstimatedTime: "2 weeks", Message: "I can do it"}
	bid, err := svc.CreateBid(ctx, &Identity{ID: seller.ID, Role: models.RoleSeller}, req)
	require.NoError(t, err)

	assert.Equal(t, models.BidSubmitted, bid.BidStatus)
	assert.Equal(t, "Sam", bid.SellerName)
	assert.Equal(t, seller.ID, bid.SellerID)
	assert.Equal(t, project.ID, bid.ProjectID)

	stored, ok := db.Project(project.ID)
	require.True(t, ok)
	assert.Len(t, stored.Bids, 1)
}

func TestBidService_CreateBid_Rejections(t *testing.T) {
	db := testutils.NewMemoryDB()
	svc := NewBidService(db.Bids(), db.Projects(), db.Users())
	ctx := context.Background()

	buyer := db.SeedUser(models.User{Name: "Ann", Email: "ann@example.com", Role: models.RoleBuyer})
	seller := db.SeedUser(models.User{Name: "Sam", Email: "sam@example.com", Role: models.RoleSeller})
	project := db.SeedProject(models.Project{Title: "Logo", BuyerID: buyer.ID})
	req := dto.CreateBidRequest{ProjectID: project.ID, Amount: 150, EstimatedTime: "2 weeks", Message: "I can do it"}
	sellerID := &Identity{ID: seller.ID, Role: models.RoleSeller}

	t.Run("buyer role", func(t *testing.T) {
		_, err := svc.CreateBid(ctx, &Identity{ID: buyer.ID, Role: models.RoleBuyer}, req)
		assertKind(t, err, KindForbidden)
	})

	t.Run("missing field", func(t *testing.T) {
		r := req
		r.Message = ""
		_, err := svc.CreateBid(ctx, sellerID, r)
		assertKind(t, err, KindValidation)
	})

	t.Run("unknown project", func(t *testing.T) {
		r := req
		r.ProjectID = "missing"
		_, err := svc.CreateBid(ctx, sellerID, r)
		assertKind(t, err, KindNotFound)
	})

	t.Run("own project", func(t *testing.T) {
		own := db.SeedProject(models.Project{Title: "Mine", BuyerID: seller.ID})
		r := req
		r.ProjectID = own.ID
		_, err := svc.CreateBid(ctx, sellerID, r)
		assertKind(t, err, KindForbidden)
		assert.Equal(t, "You cannot bid on your own project", MessageOf(err))
	})

	t.Run("deleted seller", func(t *testing.T) {
		_, err := svc.CreateBid(ctx, &Identity{ID: "gone", Role: models.RoleSeller}, req)
		assertKind(t, err, KindNotFound)
	})
}
