package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/content"
	"github.com/mmogib/classwork-v2/internal/store"
)

// GetPublications lists papers with optional year/published/accepted/
// author/journal filters.
func (h *Handler) GetPublications(c *gin.Context) {
	sortBy, desc := parseSort(c, "year", "desc")

	filter := content.PublicationFilter{
		Year:      intQuery(c, "year"),
		Published: boolQuery(c, "published"),
		Accepted:  boolQuery(c, "accepted"),
		Author:    strings.TrimSpace(c.Query("author")),
		Journal:   strings.TrimSpace(c.Query("journal")),
		SortBy:    sortBy,
		Desc:      desc,
		Limit:     parseLimit(c),
	}

	publications, err := h.content.Publications(c.Request.Context(), filter)
	if err != nil {
		log.Printf("publications listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching publications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved %d publication(s)", len(publications)),
		"count":   len(publications),
		"data":    publications,
	})
}

// GetPublication fetches one paper by ID.
func (h *Handler) GetPublication(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Publication ID is required",
			"error":   "MISSING_PUBLICATION_ID",
		})
		return
	}

	publication, err := h.content.Publication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Publication not found",
				"error":   "PUBLICATION_NOT_FOUND",
			})
			return
		}

		log.Printf("publication lookup failed for id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error while fetching publication",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Publication retrieved successfully",
		"data":    publication,
	})
}
