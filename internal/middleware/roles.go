package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
)

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden", "You do not have access to this resource.")
		c.Abort()
	}
}
