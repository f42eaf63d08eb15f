package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Repository is the narrow read/write boundary over the tax store. The
// calculation path only ever uses FindChargeWithTaxCode and the two active
// listings; the create/update methods back the admin management surface.
type Repository interface {
	FindChargeWithTaxCode(ctx context.Context, id snowflake.ID) (*Charge, error)
	ListTaxCodes(ctx context.Context, activeOnly bool) ([]TaxCode, error)
	ListCharges(ctx context.Context, activeOnly bool) ([]Charge, error)
	CreateTaxCode(ctx context.Context, code *TaxCode) error
	CreateCharge(ctx context.Context, charge *Charge) error
	FindTaxCodeByID(ctx context.Context, id snowflake.ID) (*TaxCode, error)
	UpdateTaxCode(ctx context.Context, code *TaxCode) error
}
