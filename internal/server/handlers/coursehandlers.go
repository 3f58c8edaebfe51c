package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/content"
)

// GetCourses lists courses joined with term and teacher data.
// Query parameters: active=true, term (name substring or term number),
// level (undergraduate|graduate), code (substring), sort (term|code|name),
// order (asc|desc), limit.
func (h *Handler) GetCourses(c *gin.Context) {
	sortBy, desc := parseSort(c, "term", "desc")

	filter := content.CourseFilter{
		ActiveOnly: c.Query("active") == "true",
		Term:       strings.TrimSpace(c.Query("term")),
		Level:      strings.TrimSpace(c.Query("level")),
		Code:       strings.TrimSpace(c.Query("code")),
		SortBy:     sortBy,
		Desc:       desc,
		Limit:      parseLimit(c),
	}

	courses, err := h.content.Courses(c.Request.Context(), filter)
	if err != nil {
		log.Printf("courses listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching courses data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d course(s)", len(courses)),
		"count":   len(courses),
		"data":    courses,
	})
}
