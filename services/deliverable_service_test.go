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

func TestDeliverableService_UploadDeliverable(t *testing.T) {
	db := testutils.NewMemoryDB()
	svc := NewDeliverableService(db.Deliverables())
	ctx := context.Background()

	bid := db.SeedBid(models.Bid{ProjectID: "p-1", SellerID: "s-1", BidStatus: models.BidSelected})
	project := db.SeedProject(models.Project{
		ID:          "p-1",
		Title:       "Logo",
		BuyerID:     "b-1",
		Status:      models.ProjectInProgress,
		SelectedBid: &bid.ID,
	})

	deliverable, err := svc.UploadDeliverable(ctx, dto.CreateDeliverableRequest{ProjectID: project.ID, FileURL: "https://files/final.zip"})
	require.NoError(t, err)
	assert.NotEmpty(t, deliverable.ID)
	assert.Equal(t, 1, db.DeliverableCount())

	stored, _ := db.Project(project.ID)
	assert.Equal(t, models.ProjectCompleted, stored.Status)

	storedBid, _ := db.Bid(bid.ID)
	assert.Equal(t, models.BidCompleted, storedBid.BidStatus)
}

func TestDeliverableService_UploadDeliverable_Rejections(t *testing.T) {
	db := testutils.NewMemoryDB()
	svc := NewDeliverableService(db.Deliverables())
	ctx := context.Background()

	_, err := svc.UploadDeliverable(ctx, dto.CreateDeliverableRequest{ProjectID: "p-1"})
	assertKind(t, err, KindValidation)

	_, err = svc.UploadDeliverable(ctx, dto.CreateDeliverableRequest{ProjectID: "missing", FileURL: "https://files/x"})
	assertKind(t, err, KindNotFound)
	assert.Equal(t, 0, db.DeliverableCount())
}
