package handlers

import (
	"fmt"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// Base IDs inherit the upstream convention: "app" followed by 14
// alphanumerics.
var baseIDRe = regexp.MustCompile(`^app[a-zA-Z0-9]{14}$`)

// GetAssignments lists the released assignments of the base's current term.
func (h *Handler) GetAssignments(c *gin.Context) {
	base := c.Param("base")

	if !baseIDRe.MatchString(base) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid base ID format",
			"error":   "INVALID_BASE_ID",
		})
		return
	}

	assignments, err := h.classwork.CurrentAssignments(c.Request.Context(), base)
	if err != nil {
		log.Printf("assignments lookup failed for base=%s: %v", base, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching assignments",
			"error":   err.Error(),
		})
		return
	}

	if len(assignments) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No current assignments available",
			"data":    assignments,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Found %d current assignment(s)", len(assignments)),
		"data":    assignments,
	})
}
