package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/gradebook"
	"github.com/mmogib/classwork-v2/internal/store"
)

// GetStudentGrades serves the disclosure report for one student: every
// configured field in display order, with unpublished values replaced by
// the sentinel.
func (h *Handler) GetStudentGrades(c *gin.Context) {
	base := c.Param("base")
	hid := c.Param("hid")

	if base == "" || hid == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required parameters: base_id and hid",
			"error":   "Invalid request",
		})
		return
	}

	report, err := h.gradebook.Report(c.Request.Context(), base, hid)
	if err != nil {
		switch {
		case errors.Is(err, gradebook.ErrInvalidIdentifier):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required parameters: base_id and hid",
				"error":   "Invalid request",
			})
		case errors.Is(err, gradebook.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Invalid HID or student not found",
				"error":   "Student not found",
			})
		default:
			log.Printf("grades lookup failed for base=%s hid=%s: %v", base, hid, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error while fetching grades",
				"error":   err.Error(),
			})
		}
		return
	}

	if len(report.Items) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No grades configured for display yet",
			"data":    report.Items,
		})
		return
	}

	message := "Grades retrieved successfully"
	if report.HasUndisclosed {
		message = "Some grades not published yet"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    report.Items,
	})
}

// GetStudentClasswork serves the classwork view: the same displayable
// fields, but looked up by record ID and normalized with the category-gated
// text rules.
func (h *Handler) GetStudentClasswork(c *gin.Context) {
	base := c.Param("base")
	id := c.Param("hid")

	if base == "" || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required parameters: base_id and hid",
			"error":   "Invalid request",
		})
		return
	}

	items, err := h.classwork.StudentClasswork(c.Request.Context(), base, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Invalid HID or student not found",
				"error":   "Student not found",
			})
			return
		}

		log.Printf("classwork lookup failed for base=%s id=%s: %v", base, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching classwork",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Classwork retrieved successfully",
		"data":    items,
	})
}
