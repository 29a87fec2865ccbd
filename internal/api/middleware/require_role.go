package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

// RequireRole gates a capability class by role. An authenticated caller with
// the wrong role gets FORBIDDEN, never a silent downgrade to anonymous.
// Superusers pass every role gate.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	allow := map[models.Role]struct{}{}
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	return func(c *gin.Context) {
		if su, ok := c.Get("superuser"); ok {
			if b, _ := su.(bool); b {
				c.Next()
				return
			}
		}

		v, ok := c.Get("role")
		s, _ := v.(string)
		role := models.Role(strings.TrimSpace(strings.ToLower(s)))

		if !ok || role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, apiError{
				Code:    utils.CodeForbidden,
				Message: "forbidden",
			})
			return
		}

		if _, ok := allow[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apiError{
				Code:    utils.CodeForbidden,
				Message: "forbidden",
			})
			return
		}

		c.Next()
	}
}

func RequireEmployer() gin.HandlerFunc  { return RequireRole(models.RoleEmployer) }
func RequireJobseeker() gin.HandlerFunc { return RequireRole(models.RoleJobseeker) }
