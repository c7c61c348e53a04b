package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/justsurfingit/job-tracker/internal/services"
	"github.com/justsurfingit/job-tracker/internal/validation"
	"go.uber.org/zap"
)

// respondError maps an error onto a status code. External failures get the
// generic userMsg; the cause is only logged.
func respondError(c *gin.Context, log *zap.Logger, err error, userMsg string) {
	var vErr *validation.ValidationError
	var newsErr *services.NewsAPIError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrNewsAPIKeyMissing):
		log.Warn("news request without API key")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "News API key is not configured. Please check the configuration."})
	case errors.As(err, &newsErr):
		log.Error(userMsg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           userMsg,
			"providerStatus":  newsErr.StatusCode,
			"providerMessage": newsErr.Message,
		})
	case errors.Is(err, services.ErrGeneration), errors.Is(err, services.ErrUnexpectedOutput):
		log.Error(userMsg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": userMsg})
	default:
		log.Error(userMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": userMsg})
	}
	_ = c.Error(err)
}

func invalidJSON(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}
