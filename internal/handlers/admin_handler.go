package handlers

import (
	"net/http"

	"lawhub_backend/internal/middleware"
	"lawhub_backend/internal/models"
	"lawhub_backend/internal/services"
	"lawhub_backend/internal/services/dto"
	"lawhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation endpoints: the lawyer verification
// queue and the review board.
type AdminHandler struct {
	*BaseHandler
	lawyerService services.LawyerService
	reviewService services.ReviewService
}

func NewAdminHandler(base *BaseHandler, lawyerService services.LawyerService, reviewService services.ReviewService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		lawyerService: lawyerService,
		reviewService: reviewService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, userService services.UserService) {
	admin := rg.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.ResolveUserMiddleware(userService),
		middleware.AdminMiddleware(),
	)
	{
		admin.GET("/lawyers/pending", h.ListPendingLawyers)
		admin.PATCH("/lawyers/:id/status", h.ModerateLawyer)
		admin.GET("/reviews", h.ListAllReviews)
		admin.PATCH("/reviews/:type/:id/status", h.ModerateReview)
	}
}

func (h *AdminHandler) ListPendingLawyers(c *gin.Context) {
	db := h.GetDB(c)

	profiles, err := h.lawyerService.ListPending(c.Request.Context(), db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *AdminHandler) ModerateLawyer(c *gin.Context) {
	var req dto.ModerateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.lawyerService.Moderate(db, c.Param("id"), models.ApprovalStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile moderated"})
}

func (h *AdminHandler) ListAllReviews(c *gin.Context) {
	db := h.GetDB(c)

	reviews, err := h.reviewService.ListAllForModeration(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *AdminHandler) ModerateReview(c *gin.Context) {
	reviewType := models.ReviewType(c.Param("type"))
	if reviewType != models.ReviewTypeCompany && reviewType != models.ReviewTypeInterview {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Review type must be 'company' or 'interview'"))
		return
	}

	var req dto.ModerateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.reviewService.Moderate(db, reviewType, c.Param("id"), models.ApprovalStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review moderated"})
}
