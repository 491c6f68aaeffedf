package middleware

import (
	"lunvee/internal/store" // User store for role lookups
	"net/http"              // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole checks the user's role from the store on each request. The
// token alone is not trusted for authorization; the stored record is.
func RequireRole(users store.UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.GetByID(userID.(string)) // Fetch user from store
		if err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}
		// Check the stored role
		if user.Role != role {
			// If role does not match, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}
		c.Set("currentUser", user) // Store the full user for handlers
		c.Next()                   // Proceed to the next handler
	}
}
