package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAccessCode validates a shuffler access code and returns its owner
// while the code is active and unexpired.
func (h *Handler) CheckAccessCode(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid code format",
			"error":   "INVALID_CODE",
		})
		return
	}

	user, err := h.access.CheckCode(c.Request.Context(), req.Code)
	if err != nil {
		log.Printf("access code check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while checking access code",
			"error":   err.Error(),
		})
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No active user matches this code",
			"data":    gin.H{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Found one user",
		"data":    user,
	})
}
