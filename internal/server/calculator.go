package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	formuladomain "github.com/swiftcargo/freightd/internal/formula/domain"
)

// CalculateChargeableWeight runs the full dimensions-to-billable-weight
// conversion for interactive calculators.
func (s *Server) CalculateChargeableWeight(c *gin.Context) {
	var req formuladomain.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.formulaSvc.CalculateAll(req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// ListTransportModes exposes the rating table for dropdowns and display.
func (s *Server) ListTransportModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": s.formulaSvc.SupportedModes()})
}
