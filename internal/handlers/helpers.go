package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/logger"
)

// getIdentityID extracts the authenticated identity id from the Gin context.
// Returns ErrNotAuthenticated if not present.
func getIdentityID(c *gin.Context) (string, error) {
	identityID, exists := c.Get("identityID")
	if !exists {
		return "", apperrors.ErrNotAuthenticated
	}
	return identityID.(string), nil
}

// optionalIdentityID extracts the identity id when a session exists and
// returns the empty string otherwise. Used on routes whose contract treats
// an absent session as a non-error.
func optionalIdentityID(c *gin.Context) string {
	identityID, exists := c.Get("identityID")
	if !exists {
		return ""
	}
	return identityID.(string)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
