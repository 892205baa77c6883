package middleware

import "github.com/gin-gonic/gin"

// adminIDKey is the key used to store the authenticated admin's ID in the context.
const adminIDKey = contextKey("adminID")

// GetAdminIDFromContext retrieves the authenticated admin ID from the Gin context.
// It returns the admin ID and a boolean indicating if it was found.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminIDVal, exists := c.Get(string(adminIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(adminIDKey); v != nil {
			if adminID, ok := v.(string); ok {
				return adminID, true
			}
		}
		return "", false
	}

	adminID, ok := adminIDVal.(string)
	if !ok {
		return "", false
	}

	return adminID, true
}
