package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/content"
)

// GetProjects lists research projects parsed from their grant descriptions.
func (h *Handler) GetProjects(c *gin.Context) {
	sortBy, desc := parseSort(c, "order", "asc")

	filter := content.ProjectFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Year:   intQuery(c, "year"),
		SortBy: sortBy,
		Desc:   desc,
		Limit:  parseLimit(c),
	}

	projects, err := h.content.Projects(c.Request.Context(), filter)
	if err != nil {
		log.Printf("projects listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching projects data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d project(s)", len(projects)),
		"count":   len(projects),
		"data":    projects,
	})
}
