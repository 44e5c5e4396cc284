package handlers

import (
	"net/http"

	"lawhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PageHandler backs the browser routes that sit behind the page gates. The
// responses are page payloads; the interesting part is the gate chain the
// routes package mounts in front of them.
type PageHandler struct {
	*BaseHandler
	reviewService services.ReviewService
	lawyerService services.LawyerService
}

func NewPageHandler(base *BaseHandler, reviewService services.ReviewService, lawyerService services.LawyerService) *PageHandler {
	return &PageHandler{
		BaseHandler:   base,
		reviewService: reviewService,
		lawyerService: lawyerService,
	}
}

// Home is the public landing page.
func (h *PageHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "home"})
}

// Login is the public login page; next tells the client where to return.
func (h *PageHandler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "login",
		"next": c.Query("next"),
	})
}

// Reviews is the gated review listing page.
func (h *PageHandler) Reviews(c *gin.Context) {
	db := h.GetDB(c)

	reviews, err := h.reviewService.ListPublicCompany(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    "reviews",
		"reviews": reviews,
	})
}

// NewReview is the gated company review form page.
func (h *PageHandler) NewReview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "reviews/new"})
}

// NewInterviewReview is the interview review form page; reaching it requires
// an approved lawyer profile on top of a session.
func (h *PageHandler) NewInterviewReview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "interview-reviews/new"})
}

// AdminDashboard is the admin landing page behind the admin gate.
func (h *PageHandler) AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "admin"})
}
