// internal/interfaces/http/handlers/response.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/interfaces/http/middleware"
	"github.com/romawatches/storefront/internal/pkg/apperror"
	"github.com/sirupsen/logrus"
)

const internalErrorMessage = "Something went wrong, please try again later"

// respondSuccess writes {"success": true, "message": ..., ...extra}
func respondSuccess(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondError maps err onto the error envelope. Errors outside the domain
// taxonomy are logged and answered with a generic 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	if appErr, ok := apperror.As(err); ok {
		c.JSON(appErr.Kind.HTTPStatus(), gin.H{
			"success": false,
			"message": appErr.Message,
			"code":    appErr.Code,
		})
		return
	}

	_ = c.Error(err)
	logger.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"method":     c.Request.Method,
		"path":       c.FullPath(),
	}).Error("Request failed")

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": internalErrorMessage,
		"code":    "internal_error",
	})
}

// respondBadRequest answers a request whose body or parameters could not be read
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"code":    "invalid_request",
	})
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Please sign in to continue",
		"code":    "unauthorized",
	})
}

// requireUser returns the authenticated user id or answers 401
func requireUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return 0, false
	}
	return userID, true
}

// parseIDParam reads a positive numeric path parameter or answers 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
