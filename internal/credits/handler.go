package credits

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blue-carbon/marketplace/marketplace-backend/internal/auth"
	"blue-carbon/marketplace/marketplace-backend/internal/users"
)

// PurchaseRequest is the purchase form payload.
type PurchaseRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// Handler handles HTTP requests for purchasing and holding credits
type Handler struct {
	service  *Service
	profiles *users.Service
	logger   *zap.Logger
}

func NewHandler(service *Service, profiles *users.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, profiles: profiles, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/purchase", h.purchase)

	credits := rg.Group("/credits")
	{
		credits.GET("", h.myCredits)
		credits.POST("/:id/certificate", h.resendCertificate)
	}
}

// purchase handles POST /api/v1/projects/:id/purchase
func (h *Handler) purchase(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}

	profile := h.profiles.GetProfile(c.Request.Context(), userID)
	if profile == nil || profile.Role != users.RoleBuyer {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "only onboarded buyer accounts can purchase credits",
		})
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	buyer := Buyer{ID: profile.ID, Name: profile.DisplayName, Email: profile.Email}
	result, err := h.service.Purchase(c.Request.Context(), c.Param("id"), buyer, req.Quantity)
	if err != nil {
		h.respondPurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"credit":          result.Credit,
		"certificateSent": result.CertificateSent,
	})
}

// myCredits handles GET /api/v1/credits
func (h *Handler) myCredits(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"credits": h.service.ListByBuyer(c.Request.Context(), userID),
	})
}

// resendCertificate handles POST /api/v1/credits/:id/certificate
func (h *Handler) resendCertificate(c *gin.Context) {
	userID, ok := auth.RequireUser(c)
	if !ok {
		return
	}

	profile := h.profiles.GetProfile(c.Request.Context(), userID)
	if profile == nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "onboarding required"})
		return
	}

	err := h.service.ResendCertificate(c.Request.Context(), c.Param("id"), profile.Email)
	switch {
	case errors.Is(err, ErrCreditNotFound), errors.Is(err, ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case err != nil:
		h.logger.Error("certificate resend failed", zap.String("creditID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to send certificate email.",
		})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (h *Handler) respondPurchaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, ErrProjectNotVerified),
		errors.Is(err, ErrQuantityInvalid),
		errors.Is(err, ErrQuantityExceeds):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		h.logger.Error("purchase failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to complete purchase.",
		})
	}
}
