package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/content"
)

// GetEducation lists education records with degree and location extracted
// from the description text.
func (h *Handler) GetEducation(c *gin.Context) {
	sortBy, desc := parseSort(c, "year", "desc")

	filter := content.EducationFilter{
		Year:        intQuery(c, "year"),
		Institution: strings.TrimSpace(c.Query("institution")),
		SortBy:      sortBy,
		Desc:        desc,
		Limit:       parseLimit(c),
	}

	educations, err := h.content.Education(c.Request.Context(), filter)
	if err != nil {
		log.Printf("education listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching education data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d education record(s)", len(educations)),
		"count":   len(educations),
		"data":    educations,
	})
}
