package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
)

type calculateTaxRequest struct {
	SalePrice float64      `json:"sale_price"`
	ChargeID  snowflake.ID `json:"charge_id"`
}

type taxBreakdownRequest struct {
	Items []taxdomain.BatchItem `json:"items"`
}

type createTaxCodeRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	IsActive *bool   `json:"is_active"`
}

type createChargeRequest struct {
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	TaxCodeID snowflake.ID `json:"tax_code_id"`
	IsActive  *bool        `json:"is_active"`
}

func (s *Server) CalculateTax(c *gin.Context) {
	var req calculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.taxSvc.GetTaxAmount(c.Request.Context(), req.SalePrice, req.ChargeID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (s *Server) TaxBreakdown(c *gin.Context) {
	var req taxBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if len(req.Items) == 0 {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.taxSvc.GetTaxBreakdown(c.Request.Context(), req.Items)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (s *Server) ListActiveTaxCodes(c *gin.Context) {
	codes, err := s.taxSvc.ActiveTaxCodes(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": codes})
}

func (s *Server) ListActiveCharges(c *gin.Context) {
	charges, err := s.taxSvc.ActiveCharges(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": charges})
}

func (s *Server) CreateTaxCode(c *gin.Context) {
	var req createTaxCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	code, err := s.taxSvc.CreateTaxCode(c.Request.Context(), taxdomain.CreateTaxCodeRequest{
		Code:     strings.TrimSpace(req.Code),
		Name:     strings.TrimSpace(req.Name),
		Rate:     req.Rate,
		IsActive: req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": code})
}

func (s *Server) CreateCharge(c *gin.Context) {
	var req createChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	charge, err := s.taxSvc.CreateCharge(c.Request.Context(), taxdomain.CreateChargeRequest{
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		TaxCodeID: req.TaxCodeID,
		IsActive:  req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": charge})
}

func (s *Server) DisableTaxCode(c *gin.Context) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	code, err := s.taxSvc.DisableTaxCode(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": code})
}
