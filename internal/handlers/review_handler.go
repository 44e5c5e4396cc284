package handlers

import (
	"net/http"

	"lawhub_backend/internal/middleware"
	"lawhub_backend/internal/services"
	"lawhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

// RegisterRoutes mounts the review endpoints. Everything requires a session
// and a resolved user; moderation status is enforced inside the service.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, userService services.UserService) {
	reviews := rg.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware(), middleware.ResolveUserMiddleware(userService))
	{
		reviews.POST("/company", h.SubmitCompany)
		reviews.POST("/interview", h.SubmitInterview)
		reviews.PUT("/company/:id", h.ReviseCompany)
		reviews.PUT("/interview/:id", h.ReviseInterview)
		reviews.GET("/my", h.ListMy)
		reviews.GET("/company", h.ListPublicCompany)
		reviews.GET("/interview", h.ListPublicInterview)
	}
}

func (h *ReviewHandler) SubmitCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CompanyReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	review, err := h.reviewService.SubmitCompany(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) SubmitInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.InterviewReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	review, err := h.reviewService.SubmitInterview(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ReviseCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CompanyReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	review, err := h.reviewService.ReviseCompany(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) ReviseInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.InterviewReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	review, err := h.reviewService.ReviseInterview(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListMy returns all of the caller's reviews regardless of status, so the
// dashboard can offer revision on the rejected ones.
func (h *ReviewHandler) ListMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	resp, err := h.reviewService.ListMy(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) ListPublicCompany(c *gin.Context) {
	db := h.GetDB(c)

	reviews, err := h.reviewService.ListPublicCompany(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListPublicInterview(c *gin.Context) {
	db := h.GetDB(c)

	reviews, err := h.reviewService.ListPublicInterview(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
