package dto

// CreateBidRequest represents a seller's offer on a project
type CreateBidRequest struct {
	ProjectID     string  `json:"projectId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	EstimatedTime string  `json:"estimatedTime" binding:"required"`
	Message       string  `json:"message" binding:"required"`
}

// CreateDeliverableRequest hands over the final artifact of a project
type CreateDeliverableRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	FileURL   string `json:"fileUrl" binding:"required"`
}
