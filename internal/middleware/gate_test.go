package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawhub_backend/internal/auth"
	"lawhub_backend/internal/config"
	"lawhub_backend/internal/models"
	"lawhub_backend/internal/services"
	"lawhub_backend/internal/services/dto"
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

// stubLawyerService serves a fixed profile per user id.
type stubLawyerService struct {
	profiles map[string]*models.LawyerProfile
}

func (s *stubLawyerService) ListPending(_ context.Context, _ *gorm.DB) ([]*dto.PendingProfileResponse, error) {
	return nil, nil
}

func (s *stubLawyerService) Moderate(_ *gorm.DB, _ string, _ models.ApprovalStatus) error {
	return nil
}

func (s *stubLawyerService) GetByUserID(_ *gorm.DB, userID string) (*models.LawyerProfile, error) {
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound(nil)
}

var (
	_ services.UserService   = (*stubUserService)(nil)
	_ services.LawyerService = (*stubLawyerService)(nil)
)

func newGateRouter(userSvc *stubUserService, lawyerSvc *stubLawyerService) *gin.Engine {
	r := gin.New()
	r.Use(DBMiddleware(nil))

	member := r.Group("/")
	member.Use(PageAuthGate())
	member.GET("/reviews", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "reviews"}) })

	interview := r.Group("/")
	interview.Use(PageAuthGate(), ApprovedProfileGate(userSvc, lawyerSvc))
	interview.GET("/interview-reviews/new", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "form"}) })

	admin := r.Group("/admin")
	admin.Use(AdminPageGate(userSvc))
	admin.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "admin"}) })

	return r
}

func bearerFor(t *testing.T, authID string) string {
	t.Helper()
	token, err := auth.GenerateToken(authID)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPageAuthGateRedirectsAnonymous(t *testing.T) {
	r := newGateRouter(&stubUserService{}, &stubLawyerService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Freviews", w.Header().Get("Location"))
}

func TestPageAuthGatePassesSession(t *testing.T) {
	r := newGateRouter(&stubUserService{}, &stubLawyerService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	req.Header.Set("Authorization", bearerFor(t, "auth-1"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageAuthGateAcceptsSessionCookie(t *testing.T) {
	r := newGateRouter(&stubUserService{}, &stubLawyerService{})

	token, err := auth.GenerateToken("auth-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminPageGateRedirects(t *testing.T) {
	userSvc := &stubUserService{users: map[string]*models.User{
		"auth-admin":  {BaseModel: models.BaseModel{ID: "u1"}, IsAdmin: true},
		"auth-member": {BaseModel: models.BaseModel{ID: "u2"}},
	}}
	r := newGateRouter(userSvc, &stubLawyerService{})

	// No session: to the login page, no next param.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Session without admin rights: home.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, "auth-member"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Admin passes.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, "auth-admin"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApprovedProfileGateDeniesWithBody(t *testing.T) {
	userSvc := &stubUserService{users: map[string]*models.User{
		"auth-pending":  {BaseModel: models.BaseModel{ID: "u-pending"}},
		"auth-approved": {BaseModel: models.BaseModel{ID: "u-approved"}},
	}}
	lawyerSvc := &stubLawyerService{profiles: map[string]*models.LawyerProfile{
		"u-pending":  {Status: models.StatusPending},
		"u-approved": {Status: models.StatusApproved},
	}}
	r := newGateRouter(userSvc, lawyerSvc)

	// Pending profile: 403 body, not a redirect.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/interview-reviews/new", nil)
	req.Header.Set("Authorization", bearerFor(t, "auth-pending"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	// Approved profile passes.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/interview-reviews/new", nil)
	req.Header.Set("Authorization", bearerFor(t, "auth-approved"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareReturnsJSON401(t *testing.T) {
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}
