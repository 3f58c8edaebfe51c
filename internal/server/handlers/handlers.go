// Package handlers maps HTTP requests onto the domain services and owns the
// response envelope and status-code conventions.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/access"
	"github.com/mmogib/classwork-v2/internal/classwork"
	"github.com/mmogib/classwork-v2/internal/content"
	"github.com/mmogib/classwork-v2/internal/gradebook"
	"github.com/mmogib/classwork-v2/internal/updates"
)

// Handler groups the domain services behind the HTTP surface.
type Handler struct {
	gradebook *gradebook.Service
	classwork *classwork.Service
	content   *content.Service
	updates   *updates.Service
	access    *access.Service
}

// New builds the HTTP handler set.
func New(
	gb *gradebook.Service,
	cw *classwork.Service,
	ct *content.Service,
	up *updates.Service,
	ac *access.Service,
) *Handler {
	return &Handler{
		gradebook: gb,
		classwork: cw,
		content:   ct,
		updates:   up,
		access:    ac,
	}
}

// Health responds with a simple service heartbeat.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "classwork API is running",
	})
}

// parseLimit reads the limit query parameter; anything non-positive or
// unparsable means no limit, matching the original behavior of ignoring
// bad values.
func parseLimit(c *gin.Context) int {
	value := strings.TrimSpace(c.Query("limit"))
	if value == "" {
		return 0
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}

// parseSort reads sort/order query parameters with per-endpoint defaults.
func parseSort(c *gin.Context, defaultSort, defaultOrder string) (sortBy string, desc bool) {
	sortBy = strings.TrimSpace(c.Query("sort"))
	if sortBy == "" {
		sortBy = defaultSort
	}

	order := strings.TrimSpace(c.Query("order"))
	if order == "" {
		order = defaultOrder
	}
	return sortBy, order == "desc"
}

// boolQuery reads a tri-state boolean query parameter: nil when absent.
func boolQuery(c *gin.Context, name string) *bool {
	value, present := c.GetQuery(name)
	if !present {
		return nil
	}

	b := value == "true"
	return &b
}

// intQuery reads an integer query parameter; 0 when absent or unparsable.
func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(name)))
	if err != nil {
		return 0
	}
	return n
}
