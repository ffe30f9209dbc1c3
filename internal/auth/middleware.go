package auth

import (
	"net/http"
	"strings"

	"taskask-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const claimsContextKey = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID.String())
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Set(claimsContextKey, claims)

		c.Next()
	}
}

// RequireRoles gates a route to callers whose role is in the allowed set.
// Applied after RequireAuth; this is the single dispatch-time role check.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the validated claims set by RequireAuth, or nil
func ClaimsFromContext(c *gin.Context) *AuthClaims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// UserIDFromContext returns the authenticated caller's user id
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
