package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/pkg/auth"
)

// Context keys set by SessionRequired
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware gates routes on a valid session
type AuthMiddleware struct {
	sessions   *auth.SessionService
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// SessionRequired validates the session cookie (or a Bearer token) and
// stores the identity in the request context. Without a valid session the
// handler never runs; the caller is pointed back at the login page.
func (m *AuthMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.cookieName)
		if err != nil || tokenString == "" {
			// Fall back to the Authorization header for non-browser clients
			if header := c.GetHeader("Authorization"); header != "" {
				tokenString, _ = auth.ExtractBearerToken(header)
			}
		}

		if tokenString == "" {
			abortToLogin(c)
			return
		}

		claims, err := m.sessions.Validate(tokenString)
		if err != nil {
			abortToLogin(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired checks the session role set by SessionRequired. A mismatch
// answers with an access-denied notice and points back at the profile
// router, mirroring the per-role page guards.
func (m *AuthMiddleware) RoleRequired(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortToLogin(c)
			return
		}

		if roleValue, ok := role.(models.Role); !ok || roleValue != required {
			c.Header("Location", "/profile")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
				Error:    dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access Denied"),
				Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Access Denied")},
				Redirect: "/profile",
			})
			return
		}

		c.Next()
	}
}

// SessionIdentity reads the identity stored by SessionRequired
func SessionIdentity(c *gin.Context) (int64, string, models.Role, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return 0, "", "", false
	}
	id, ok := userID.(int64)
	if !ok {
		return 0, "", "", false
	}

	username, _ := c.Get(ContextUsername)
	name, _ := username.(string)

	role, _ := c.Get(ContextRole)
	roleValue, ok := role.(models.Role)
	if !ok {
		return 0, "", "", false
	}

	return id, name, roleValue, true
}

func abortToLogin(c *gin.Context) {
	c.Header("Location", "/login")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
		Error:    dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "You must be logged in to view this page.")},
		Redirect: "/login",
	})
}
