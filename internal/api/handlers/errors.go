package handlers

import (
	"net/http"

	apperrors "bookclub-backend/internal/errors"
	"bookclub-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps the error taxonomy onto HTTP statuses: validation
// errors become 400, missing entities 404, uniqueness conflicts 409 and
// everything else a 500 with the detail logged server-side and a generic
// message in the body.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.New().WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
