package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/middleware"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/services"
)

// Dependencies are the services the v1 routes are served by
type Dependencies struct {
	Tokens       *services.TokenService
	Auth         *services.AuthService
	Projects     *services.ProjectService
	Bids         *services.BidService
	Deliverables *services.DeliverableService
	AuthLimiter  *middleware.RateLimiter
	Health       *HealthController
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	requireAuth := middleware.AuthMiddleware(deps.Tokens)
	limited := deps.AuthLimiter.Middleware()

	router.GET("/health", deps.Health.Check)

	authController := NewAuthController(deps.Auth)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authController.Signup)
		authGroup.POST("/login", limited, authController.Login)
		authGroup.POST("/request-otp", limited, authController.RequestOTP)
		authGroup.POST("/verify-otp", authController.VerifyOTP)
		authGroup.GET("/me", requireAuth, authController.GetCurrentUser)
	}

	projectController := NewProjectController(deps.Projects)
	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", projectController.ListProjects)
		projectGroup.POST("", requireAuth, middleware.RequireRole(models.RoleBuyer), projectController.CreateProject)
		projectGroup.GET("/:id/bids", projectController.ListProjectBids)
		projectGroup.PUT("/:id/status", requireAuth, projectController.UpdateStatus)
	}

	bidController := NewBidController(deps.Bids)
	router.POST("/bids", requireAuth, middleware.RequireRole(models.RoleSeller), bidController.CreateBid)

	deliverableController := NewDeliverableController(deps.Deliverables)
	router.POST("/deliverables", requireAuth, deliverableController.UploadDeliverable)
}
