package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProvinces is the handler for GET /v1/psgc/provinces.
// A pass-through to the public PSGC API, reshaped to the fields the
// address forms use. Upstream failure maps to a fixed 502.
func (h *Handlers) GetProvinces(c *gin.Context) {
	provinces, err := h.PSGC.Provinces(c.Request.Context())
	if err != nil {
		log.Printf("psgc: fetching provinces: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch provinces"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provinces": provinces})
}
