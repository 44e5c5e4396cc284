package handlers

import (
	"net/http"

	"lawhub_backend/internal/middleware"
	"lawhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CompanyHandler proxies company name lookups so the search API key stays
// server side.
type CompanyHandler struct {
	*BaseHandler
	searchService services.CompanySearchService
}

func NewCompanyHandler(base *BaseHandler, searchService services.CompanySearchService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("/search", h.Search)
	}
}

func (h *CompanyHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
