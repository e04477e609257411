package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/services"
)

type DeliverableController struct {
	deliverableService *services.DeliverableService
}

func NewDeliverableController(deliverableService *services.DeliverableService) *DeliverableController {
	return &DeliverableController{deliverableService: deliverableService}
}

// UploadDeliverable records the final artifact of a project
func (dc *DeliverableController) UploadDeliverable(c *gin.Context) {
	var req dto.CreateDeliverableRequest
	if !bindJSON(c, &req) {
		return
	}

	deliverable, err := dc.deliverableService.UploadDeliverable(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Deliverable uploaded successfully",
		"deliverable": deliverable,
	})
}
