package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Service resolves a charge's applicable tax code and computes tax amounts.
// Calculation calls are read-only; management calls mutate the tax store.
type Service interface {
	GetTaxAmount(ctx context.Context, salePrice float64, chargeID snowflake.ID) (*TaxCalculation, error)
	CalculateBatchTax(ctx context.Context, items []BatchItem) ([]TaxCalculation, error)
	GetTaxBreakdown(ctx context.Context, items []BatchItem) (*TaxBreakdown, error)
	ActiveTaxCodes(ctx context.Context) ([]TaxCode, error)
	ActiveCharges(ctx context.Context) ([]Charge, error)

	CreateTaxCode(ctx context.Context, req CreateTaxCodeRequest) (*TaxCode, error)
	CreateCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error)
	DisableTaxCode(ctx context.Context, id snowflake.ID) (*TaxCode, error)
}

type CreateTaxCodeRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	IsActive *bool   `json:"is_active"`
}

type CreateChargeRequest struct {
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	TaxCodeID snowflake.ID `json:"tax_code_id"`
	IsActive  *bool        `json:"is_active"`
}
