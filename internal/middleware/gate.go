package middleware

import (
	"net/http"
	"net/url"

	"lawhub_backend/internal/models"
	"lawhub_backend/internal/services"
	"lawhub_backend/pkg/apperrors"
	"lawhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Page gates implement the browser-facing access rules. Unlike the JSON
// middlewares above they redirect instead of returning error bodies.
//
// Precedence: admin pages first, then authenticated pages, then the
// profile-approval gate; everything else is open.

// PageAuthGate sends anonymous visitors to the login page and brings them
// back to the requested route afterwards.
func PageAuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authID, ok := sessionAuthID(c)
		if !ok {
			next := url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}

		c.Set(AuthIDKey, authID)
		c.Next()
	}
}

// AdminPageGate protects the admin pages: no session goes to /login (without
// a next param), a session without admin rights goes to the home page.
func AdminPageGate(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authID, ok := sessionAuthID(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		db, exists := c.Get(string(contextkeys.DBContextKey))
		if !exists {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		user, err := userService.ResolveUser(db.(*gorm.DB), authID)
		if err != nil || !user.IsAdmin {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(AuthIDKey, authID)
		c.Set(UserIDKey, user.ID)
		c.Set(IsAdminKey, true)
		c.Next()
	}
}

// ApprovedProfileGate blocks the interview review form for users whose
// lawyer profile is not approved. This one denies with a 403 body rather
// than redirecting, so the client can explain the pending state.
func ApprovedProfileGate(userService services.UserService, lawyerService services.LawyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authID := c.GetString(AuthIDKey)
		if authID == "" {
			apperrors.AbortWithError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		dbVal, exists := c.Get(string(contextkeys.DBContextKey))
		if !exists {
			apperrors.AbortWithError(c, apperrors.InternalError(errDBNotInContext))
			return
		}
		db := dbVal.(*gorm.DB)

		user, err := userService.ResolveUser(db, authID)
		if err != nil {
			apperrors.AbortWithError(c, apperrors.ErrProfileNotApproved)
			return
		}

		profile, err := lawyerService.GetByUserID(db, user.ID)
		if err != nil || profile.Status != models.StatusApproved {
			apperrors.AbortWithError(c, apperrors.ErrProfileNotApproved)
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
