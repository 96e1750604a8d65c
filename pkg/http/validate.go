package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dacops.xyz/dac-monitor-service/pkg/common"
	"dacops.xyz/dac-monitor-service/pkg/dac"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000

	maxFreeTextLen = 2000
	maxNameLen     = 255
)

// Substrings rejected in free-text fields before they reach the store.
var unsafeTextPatterns = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"<iframe",
}

func containsUnsafeText(s string) bool {
	lower := strings.ToLower(s)
	for _, pattern := range unsafeTextPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// validFreeText bounds free-text input and rejects XSS-indicative content.
func validFreeText(s string, maxLen int) bool {
	return len(s) > 0 && len(s) <= maxLen && !containsUnsafeText(s)
}

// parsePagination reads skip/limit query params; limit is clamped server-side
// to maxPageLimit regardless of what the caller asked for.
func parsePagination(c *gin.Context) (skip, limit int) {
	skip = 0
	limit = defaultPageLimit

	if v, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil && v > 0 {
		skip = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit))); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors to the API taxonomy. Anything unexpected
// is logged with request context and returned as an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dac.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Unit not found"})
	case errors.Is(err, dac.ErrTestRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Test run not found"})
	case errors.Is(err, dac.ErrResultExists):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Test result already exists"})
	default:
		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Error("Unhandled error in request handler",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
