package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/auth"
)

// Handler handles HTTP requests for onboarding and profiles
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/ngo-onboarding", h.ngoOnboarding)
		users.POST("/buyer-onboarding", h.buyerOnboarding)
		users.GET("/me", h.me)
		users.GET("/:id", h.getProfile)
	}
}

// ngoOnboarding handles POST /api/v1/users/ngo-onboarding
func (h *Handler) ngoOnboarding(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}

	var req NGOOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	profile, err := h.service.CompleteNGOOnboarding(c.Request.Context(), userID, req)
	if err != nil {
		h.respondOnboardingError(c, userID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// buyerOnboarding handles POST /api/v1/users/buyer-onboarding
func (h *Handler) buyerOnboarding(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}

	var req BuyerOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	profile, err := h.service.CompleteBuyerOnboarding(c.Request.Context(), userID, req)
	if err != nil {
		h.respondOnboardingError(c, userID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// me handles GET /api/v1/users/me
func (h *Handler) me(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}
	h.respondProfile(c, userID)
}

// getProfile handles GET /api/v1/users/:id
func (h *Handler) getProfile(c *gin.Context) {
	h.respondProfile(c, c.Param("id"))
}

func (h *Handler) respondProfile(c *gin.Context, id string) {
	profile := h.service.GetProfile(c.Request.Context(), id)
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *Handler) respondOnboardingError(c *gin.Context, userID string, err error) {
	if errors.Is(err, ErrRoleChange) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	}
	h.logger.Error("onboarding failed", zap.String("userID", userID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Failed to save profile information.",
	})
}
