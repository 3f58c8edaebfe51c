package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/content"
)

// GetEmployment lists employment records with derived duration fields.
func (h *Handler) GetEmployment(c *gin.Context) {
	sortBy, desc := parseSort(c, "startYear", "desc")

	filter := content.EmploymentFilter{
		CurrentOnly: c.Query("current_only") == "true",
		SortBy:      sortBy,
		Desc:        desc,
		Limit:       parseLimit(c),
	}

	employments, err := h.content.Employment(c.Request.Context(), filter)
	if err != nil {
		log.Printf("employment listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching employment data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d employment record(s)", len(employments)),
		"count":   len(employments),
		"data":    employments,
	})
}

// GetCurrentEmployment lists only ongoing positions, most recent first.
func (h *Handler) GetCurrentEmployment(c *gin.Context) {
	employments, err := h.content.CurrentEmployment(c.Request.Context())
	if err != nil {
		log.Printf("current employment listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching current employment data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d current employment record(s)", len(employments)),
		"count":   len(employments),
		"data":    employments,
	})
}
