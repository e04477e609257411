package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/dto"
	"github.com/tradepilot-api/middleware"
	"github.com/tradepilot-api/services"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// CreateProject posts a new project for the authenticated buyer
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	project, err := pc.projectService.CreateProject(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects returns every project with its bids
func (pc *ProjectController) ListProjects(c *gin.Context) {
	projects, err := pc.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListProjectBids returns the bids on one project
func (pc *ProjectController) ListProjectBids(c *gin.Context) {
	bids, err := pc.projectService.ListBidsForProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bids)
}

// UpdateStatus moves a project through its lifecycle
func (pc *ProjectController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := pc.projectService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project status updated successfully",
		"project": resp,
	})
}
