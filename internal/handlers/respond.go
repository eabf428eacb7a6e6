package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/i-am-Shekinah/eventify/internal/service"
)

// respondErr maps service errors to HTTP statuses. ErrAccessDenied
// surfaces as 404, same as ErrNotFound: a foreign-owned resource must be
// indistinguishable from a missing one.
func respondErr(c *gin.Context, err error) {
	var cfe *service.CSVFormatError
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.As(err, &cfe):
		c.JSON(http.StatusBadRequest, gin.H{"error": cfe.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

// pageParams reads 1-based page/size query params and converts to the
// repository's 0-based page.
func pageParams(c *gin.Context) (page, size int32) {
	p, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	s, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if p < 1 {
		p = 1
	}
	return int32(p - 1), int32(s)
}

func pagedJSON[T any](c *gin.Context, items []T, total int64, page, size int32) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page + 1,
		"size":  size,
	})
}

// parseTime accepts RFC3339 and zone-less ISO local timestamps.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
