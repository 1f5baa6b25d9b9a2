package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const tenantHeader = "X-Tenant-ID"

// RequireTenantHeader resolves the tenant for unauthenticated routes. The
// authenticated routes take the tenant from the token claims instead so a
// caller cannot spoof another tenant with a header.
func RequireTenantHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(tenantHeader)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Tenant-ID header required",
			})
			c.Abort()
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tenant ID format",
			})
			c.Abort()
			return
		}

		c.Set(ctxTenantIDKey, tenantID)
		c.Next()
	}
}
