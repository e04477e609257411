package services

import (
	"context"
	"errors"
	"time"

	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/lib/filestore"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/repositories"
	"github.com/tradepilot-api/utils"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projects ProjectRepository
	bids     BidRepository
	uploader filestore.Uploader
	now      func() time.Time
}

// NewProjectService creates a new project service instance. A nil uploader
// rejects status updates that carry a file.
func NewProjectService(projects ProjectRepository, bids BidRepository, uploader filestore.Uploader) *ProjectService {
	return &ProjectService{
		projects: projects,
		bids:     bids,
		uploader: uploader,
		now:      time.Now,
	}
}

// CreateProject posts a new PENDING project owned by the calling buyer
func (s *ProjectService) CreateProject(ctx context.Context, identity *Identity, req dto.CreateProjectRequest) (*models.Project, error) {
	if err := AuthorizeRole(identity, models.RoleBuyer); err != nil {
		return nil, err
	}

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		return nil, validationError(err.Error())
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Deadline:    deadline,
		Status:      models.ProjectPending,
		BuyerID:     identity.ID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, internal("Failed to create project", err)
	}

	project.Bids = []models.Bid{}
	return project, nil
}

// ListProjects retrieves every project with its bids, newest first
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, internal("Failed to fetch projects", err)
	}
	return withBids(projects), nil
}

// ListBidsForProject retrieves the bids on a project with their sellers
func (s *ProjectService) ListBidsForProject(ctx context.Context, projectID string) ([]models.Bid, error) {
	if projectID == "" {
		return nil, validationError("Project ID is required")
	}

	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Project not found")
		}
		return nil, internal("Failed to fetch project", err)
	}

	bids, err := s.bids.FindByProject(ctx, projectID)
	if err != nil {
		return nil, internal("Failed to fetch bids", err)
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids, nil
}

// UpdateStatus moves a project to a new status, optionally selecting a bid
// and attaching a completion document. The document is uploaded before
// any row changes, so a failed upload leaves the project untouched.
func (s *ProjectService) UpdateStatus(ctx context.Context, projectID string, req dto.UpdateStatusRequest) (*dto.StatusUpdateResponse, error) {
	status := models.ProjectStatus(req.Status)
	if !status.Valid() {
		return nil, validationError("Invalid status")
	}

	transition := repositories.StatusTransition{
		ProjectID: projectID,
		Status:    status,
	}
	if req.BidID != nil && *req.BidID != "" {
		transition.BidID = req.BidID
	}

	if req.FileBase64 != "" {
		doc, err := s.upload(ctx, req.FileBase64, req.FileName)
		if err != nil {
			return nil, err
		}
		transition.Document = doc
		transition.UploadedAt = s.now()
	}

	project, err := s.projects.UpdateStatus(ctx, transition)
	if errors.Is(err, repositories.ErrNotFound) {
		if transition.BidID != nil {
			return nil, notFound("Project or bid not found")
		}
		return nil, notFound("Project not found")
	}
	if err != nil {
		return nil, internal("Failed to update project status", err)
	}

	if project.Bids == nil {
		project.Bids = []models.Bid{}
	}

	return &dto.StatusUpdateResponse{
		Project:            *project,
		CompletionDocument: transition.Document,
	}, nil
}

func (s *ProjectService) upload(ctx context.Context, payload, fileName string) (*models.CompletionDocument, error) {
	data, err := filestore.DecodeBase64(payload)
	if err != nil {
		return nil, validationError("fileBase64 is not valid base64 data")
	}

	if s.uploader == nil {
		return nil, internal("Failed to upload file", errors.New("file storage is not configured"))
	}

	obj, err := s.uploader.Upload(ctx, filestore.File{Data: data, Name: fileName})
	if err != nil {
		return nil, internal("Failed to upload file", err)
	}

	return &models.CompletionDocument{
		URL:  obj.URL,
		Name: obj.Name,
		Size: obj.Size,
	}, nil
}

// withBids replaces nil bid lists so projects always serialize "bids": []
func withBids(projects []models.Project) []models.Project {
	if projects == nil {
		return []models.Project{}
	}
	for i := range projects {
		if projects[i].Bids == nil {
			projects[i].Bids = []models.Bid{}
		}
	}
	return projects
}
