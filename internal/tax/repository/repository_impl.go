package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) taxdomain.Repository {
	return &repository{db: db}
}

// FindChargeWithTaxCode is the single point-read used by the calculation
// path. Returns nil, nil when the charge does not exist.
func (r *repository) FindChargeWithTaxCode(ctx context.Context, id snowflake.ID) (*taxdomain.Charge, error) {
	var charge taxdomain.Charge
	err := r.db.WithContext(ctx).
		Preload("TaxCode").
		First(&charge, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &charge, nil
}

func (r *repository) ListTaxCodes(ctx context.Context, activeOnly bool) ([]taxdomain.TaxCode, error) {
	var items []taxdomain.TaxCode
	stmt := r.db.WithContext(ctx).Model(&taxdomain.TaxCode{})
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	if err := stmt.Order("code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListCharges(ctx context.Context, activeOnly bool) ([]taxdomain.Charge, error) {
	var items []taxdomain.Charge
	stmt := r.db.WithContext(ctx).Model(&taxdomain.Charge{}).Preload("TaxCode")
	if activeOnly {
		stmt = stmt.Where("is_active = ?", true)
	}
	if err := stmt.Order("code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateTaxCode(ctx context.Context, code *taxdomain.TaxCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *repository) CreateCharge(ctx context.Context, charge *taxdomain.Charge) error {
	return r.db.WithContext(ctx).Create(charge).Error
}

func (r *repository) FindTaxCodeByID(ctx context.Context, id snowflake.ID) (*taxdomain.TaxCode, error) {
	var code taxdomain.TaxCode
	err := r.db.WithContext(ctx).First(&code, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *repository) UpdateTaxCode(ctx context.Context, code *taxdomain.TaxCode) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE tax_codes
		 SET name = ?, rate = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		code.Name,
		code.Rate,
		code.IsActive,
		code.UpdatedAt,
		code.ID,
	).Error
}
