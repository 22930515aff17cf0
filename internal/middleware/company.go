package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CompanyGuard returns middleware that ensures company context is present.
// It relies on AuthMiddleware having already set the company_id.
func CompanyGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get(ContextKeyCompanyID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "company context required"},
			})
			return
		}
		c.Next()
	}
}
