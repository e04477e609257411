package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/middleware"
	"github.com/tradepilot-api/services"
)

// BidController handles bid endpoints
type BidController struct {
	bidService *services.BidService
}

func NewBidController(bidService *services.BidService) *BidController {
	return &BidController{bidService: bidService}
}

// CreateBid places a bid for the authenticated seller
func (bc *BidController) CreateBid(c *gin.Context) {
	var req dto.CreateBidRequest
	if !bindJSON(c, &req) {
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	bid, err := bc.bidService.CreateBid(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}
