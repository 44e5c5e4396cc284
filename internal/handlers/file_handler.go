package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"lawhub_backend/internal/middleware"
	"lawhub_backend/internal/services"
	"lawhub_backend/internal/storage"
	"lawhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored files. With local storage the "signed" license
// URLs point here; license files stay admin-only.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup, userService services.UserService) {
	files := rg.Group("/files")
	files.Use(
		middleware.AuthMiddleware(),
		middleware.ResolveUserMiddleware(userService),
		middleware.AdminMiddleware(),
	)
	{
		files.GET("/*path", h.Serve)
	}
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.Exists(ctx, path)
	if err != nil {
		h.HandleServiceError(c, apperrors.UpstreamError(err, "storage"))
		return
	}
	if !exists {
		h.HandleServiceError(c, apperrors.ErrNotFound(nil))
		return
	}

	reader, err := h.store.Get(ctx, path)
	if err != nil {
		h.HandleServiceError(c, apperrors.UpstreamError(err, "storage"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
