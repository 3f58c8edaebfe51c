package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUpdate serves the desktop updater protocol: the release payload when a
// newer build exists for target/version, 204 otherwise. This endpoint does
// not use the standard envelope — the updater consumes the raw payload.
func (h *Handler) GetUpdate(c *gin.Context) {
	target := c.Param("target")
	version := c.Param("version")

	release, err := h.updates.Lookup(c.Request.Context(), target, version)
	if err != nil {
		log.Printf("release lookup failed for target=%s version=%s: %v", target, version, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if release == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, release)
}
