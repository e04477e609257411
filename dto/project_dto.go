package dto

import "github.com/tradepilot-api/models"

// CreateProjectRequest represents the request payload for creating a new project.
// Deadline accepts RFC 3339 or a plain YYYY-MM-DD date.
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	BudgetMin   float64 `json:"budgetMin" binding:"required"`
	BudgetMax   float64 `json:"budgetMax" binding:"required"`
	Deadline    string  `json:"deadline" binding:"required"`
}

// UpdateStatusRequest moves a project through its lifecycle.
// FileBase64 may be a bare base64 string or a data URL.
type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	BidID      *string `json:"bidId"`
	FileBase64 string  `json:"fileBase64"`
	FileName   string  `json:"fileName"`
}

// StatusUpdateResponse is the updated project plus the uploaded document, if any
type StatusUpdateResponse struct {
	models.Project
	CompletionDocument *models.CompletionDocument `json:"completionDocument"`
}
