package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawhub_backend/internal/auth"
	"lawhub_backend/internal/config"
	"lawhub_backend/internal/middleware"
	"lawhub_backend/internal/models"
	"lawhub_backend/internal/services"
	"lawhub_backend/internal/storage"
	"lawhub_backend/internal/validator"
	"lawhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

// stubUserService resolves a fixed set of auth ids.
type stubUserService struct {
	users map[string]*models.User
}

func (s *stubUserService) ResolveUser(_ *gorm.DB, authID string) (*models.User, error) {
	if u, ok := s.users[authID]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubUserService) ConfirmEmail(_ *gorm.DB, _ string) error { return nil }

var _ services.UserService = (*stubUserService)(nil)

func newFileRouter(t *testing.T) (*gin.Engine, storage.Storage) {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	userSvc := &stubUserService{users: map[string]*models.User{
		"auth-admin":  {BaseModel: models.BaseModel{ID: "u-admin"}, IsAdmin: true},
		"auth-member": {BaseModel: models.BaseModel{ID: "u-member"}},
	}}

	r := gin.New()
	r.Use(middleware.DBMiddleware(nil))

	h := NewFileHandler(NewBaseHandler(validator.New()), store)
	api := r.Group("/api/v1")
	h.RegisterRoutes(api, userSvc)

	return r, store
}

func adminBearer(t *testing.T, authID string) string {
	t.Helper()
	token, err := auth.GenerateToken(authID)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestServeFileReturnsStoredContent(t *testing.T) {
	r, store := newFileRouter(t)

	path := "lawyer-licenses/u1/license.pdf"
	require.NoError(t, store.Save(context.Background(), path, strings.NewReader("license-bytes"), "application/pdf"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/"+path, nil)
	req.Header.Set("Authorization", adminBearer(t, "auth-admin"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "license-bytes", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestServeFileMissingReturns404(t *testing.T) {
	r, _ := newFileRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/lawyer-licenses/u1/gone.pdf", nil)
	req.Header.Set("Authorization", adminBearer(t, "auth-admin"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeFileRejectsTraversal(t *testing.T) {
	r, _ := newFileRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/../config.yaml", nil)
	req.Header.Set("Authorization", adminBearer(t, "auth-admin"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeFileIsAdminOnly(t *testing.T) {
	r, _ := newFileRouter(t)

	// No session.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/files/some/file.pdf", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Session without admin rights.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/some/file.pdf", nil)
	req.Header.Set("Authorization", adminBearer(t, "auth-member"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
