package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// TaxCode is a named, rated tax category (e.g. GST 18). Rate is stored as a
// percentage (18 means 18%); the engine reports it as a fraction.
type TaxCode struct {
	ID       snowflake.ID `gorm:"primaryKey" json:"id"`
	Code     string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name     string       `gorm:"type:text;not null" json:"name"`
	Rate     float64      `gorm:"type:numeric(8,4);not null" json:"rate"`
	IsActive bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (TaxCode) TableName() string { return "tax_codes" }

func (t *TaxCode) Validate() error {
	if t.Code == "" {
		return ErrInvalidTaxCode
	}
	if t.Name == "" {
		return ErrInvalidName
	}
	if t.Rate < 0 {
		return ErrInvalidTaxRate
	}
	return nil
}

// Charge is a billable line-item category (freight, handling, customs fees)
// linked to its default tax code.
type Charge struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Code      string       `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	TaxCodeID snowflake.ID `gorm:"column:tax_code_id;not null;index" json:"tax_code_id"`
	TaxCode   *TaxCode     `gorm:"foreignKey:TaxCodeID" json:"tax_code,omitempty"`
	IsActive  bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Charge) TableName() string { return "charges" }

func (c *Charge) Validate() error {
	if c.Code == "" {
		return ErrInvalidChargeCode
	}
	if c.Name == "" {
		return ErrInvalidName
	}
	if c.TaxCodeID == 0 {
		return ErrInvalidTaxCode
	}
	return nil
}

// TaxCalculation is the per-line-item computation result. SalePrice is echoed
// back unrounded; TaxRate is the fraction form of the stored percentage;
// TaxAmount and TotalAmount are rounded to 2 decimals.
type TaxCalculation struct {
	SalePrice   float64 `json:"sale_price"`
	TaxCode     string  `json:"tax_code"`
	TaxRate     float64 `json:"tax_rate"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`
}

// BatchItem is one line of a batch calculation request.
type BatchItem struct {
	SalePrice float64      `json:"sale_price"`
	ChargeID  snowflake.ID `json:"charge_id"`
}

// BreakdownTotals aggregates the already-rounded per-item values.
type BreakdownTotals struct {
	TotalSalePrice float64 `json:"total_sale_price"`
	TotalTaxAmount float64 `json:"total_tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// TaxBreakdown pairs ordered per-item results with their aggregate totals.
type TaxBreakdown struct {
	Items  []TaxCalculation `json:"items"`
	Totals BreakdownTotals  `json:"totals"`
}
