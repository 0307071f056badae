package projects

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/auth"
	"blue-carbon/marketplace/marketplace-backend/internal/users"
)

// Handler handles HTTP requests for the project registry
type Handler struct {
	service  *Service
	profiles *users.Service
	logger   *zap.Logger
}

func NewHandler(service *Service, profiles *users.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, profiles: profiles, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("", h.submitProject)
	}
}

// listProjects handles GET /api/v1/projects[?ngo=<id>]
func (h *Handler) listProjects(c *gin.Context) {
	if ngoID := c.Query("ngo"); ngoID != "" {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"projects": h.service.ListProjectsByNGO(c.Request.Context(), ngoID),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": h.service.ListProjects(c.Request.Context()),
	})
}

// getProject handles GET /api/v1/projects/:id
func (h *Handler) getProject(c *gin.Context) {
	project := h.service.GetProject(c.Request.Context(), c.Param("id"))
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

// submitProject handles POST /api/v1/projects
func (h *Handler) submitProject(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}

	profile := h.profiles.GetProfile(c.Request.Context(), userID)
	if profile == nil || profile.Role != users.RoleNGO {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "only onboarded NGO accounts can submit projects",
		})
		return
	}

	var req SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Placeholder logo until profiles carry uploaded branding.
	logoURL := fmt.Sprintf("https://picsum.photos/seed/%s/50/50", profile.ID)
	ngo := NGORef{ID: profile.ID, Name: profile.DisplayName, LogoURL: logoURL}
	project, err := h.service.SubmitProject(c.Request.Context(), req, ngo)
	if err != nil {
		h.logger.Error("project submission failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create project.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}
