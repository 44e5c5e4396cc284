package middleware

import (
	"errors"
	"strings"

	"lawhub_backend/internal/auth"
	"lawhub_backend/internal/logger"
	"lawhub_backend/internal/services"
	"lawhub_backend/pkg/apperrors"
	"lawhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errDBNotInContext = errors.New("database connection missing from request context")

// Context keys set by the auth chain.
const (
	AuthIDKey  = "authID"
	UserIDKey  = "userID"
	IsAdminKey = "isAdmin"
)

// AuthMiddleware validates the Bearer token and stores the external auth id.
// It deliberately does not touch the database; ResolveUserMiddleware does.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authID, ok := sessionAuthID(c)
		if !ok {
			apperrors.AbortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		c.Set(AuthIDKey, authID)
		c.Next()
	}
}

// ResolveUserMiddleware maps the session's auth id to the internal user row
// and stores its id and admin flag. A valid session without a user row is a
// 404, not a 401: signup stopped halfway.
func ResolveUserMiddleware(userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authID := c.GetString(AuthIDKey)
		if authID == "" {
			apperrors.AbortWithError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			apperrors.AbortWithError(c, apperrors.InternalError(errDBNotInContext))
			return
		}

		user, err := userService.ResolveUser(db.(*gorm.DB), authID)
		if err != nil {
			var appErr *apperrors.AppError
			if apperrors.As(err, &appErr) {
				apperrors.AbortWithError(c, appErr)
			} else {
				apperrors.AbortWithError(c, apperrors.InternalError(err))
			}
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(IsAdminKey, user.IsAdmin)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// AdminMiddleware gates JSON admin endpoints. Runs after
// ResolveUserMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(IsAdminKey) {
			apperrors.AbortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// sessionAuthID extracts and validates the session token from the
// Authorization header or, for browser page routes, the session cookie.
func sessionAuthID(c *gin.Context) (string, bool) {
	tokenStr := ""

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := c.Cookie("session"); err == nil {
		tokenStr = cookie
	}

	if tokenStr == "" {
		return "", false
	}

	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		return "", false
	}

	return claims.AuthID, true
}
