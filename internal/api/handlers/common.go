package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobport/jobport/internal/authz"
	"github.com/jobport/jobport/internal/models"
	"github.com/jobport/jobport/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// requireSubject assembles the authorization subject the JWT middleware left
// in the context.
func requireSubject(c *gin.Context) (authz.Subject, bool) {
	userID, ok := requireUserID(c)
	if !ok {
		return authz.Subject{}, false
	}

	sub := authz.Subject{UserID: userID}
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			sub.Role = models.Role(s)
		}
	}
	if v, ok := c.Get("superuser"); ok {
		if b, ok := v.(bool); ok {
			sub.IsSuperuser = b
		}
	}
	return sub, true
}
