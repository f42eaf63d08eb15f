package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
	"github.com/swiftcargo/freightd/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParams struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  taxdomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  taxdomain.Repository
}

func NewService(p ServiceParams) taxdomain.Service {
	return &Service{
		log:   p.Log.Named("tax.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// GetTaxAmount resolves the charge's tax code and computes the per-item tax.
// Only the tax code's active flag gates the calculation; an inactive charge
// with an active tax code still computes.
func (s *Service) GetTaxAmount(ctx context.Context, salePrice float64, chargeID snowflake.ID) (*taxdomain.TaxCalculation, error) {
	charge, err := s.repo.FindChargeWithTaxCode(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, fmt.Errorf("%w: charge %s does not exist", taxdomain.ErrChargeNotFound, chargeID)
	}
	if charge.TaxCode == nil {
		return nil, fmt.Errorf("%w: charge %s has no tax code", taxdomain.ErrTaxCodeNotFound, chargeID)
	}
	if !charge.TaxCode.IsActive {
		return nil, fmt.Errorf("%w: tax code %s is not active", taxdomain.ErrTaxCodeInactive, charge.TaxCode.Code)
	}

	rate := charge.TaxCode.Rate / 100
	taxAmount := roundMoney(salePrice * rate)
	// Total is computed from the already-rounded tax amount and rounded
	// again; this keeps cent-level parity with invoiced figures.
	totalAmount := roundMoney(salePrice + taxAmount)

	return &taxdomain.TaxCalculation{
		SalePrice:   salePrice,
		TaxCode:     charge.TaxCode.Code,
		TaxRate:     rate,
		TaxAmount:   taxAmount,
		TotalAmount: totalAmount,
	}, nil
}

// CalculateBatchTax computes every item in input order. One point read per
// item; the first failure aborts the whole batch with no partial results.
func (s *Service) CalculateBatchTax(ctx context.Context, items []taxdomain.BatchItem) ([]taxdomain.TaxCalculation, error) {
	results := make([]taxdomain.TaxCalculation, 0, len(items))
	for _, item := range items {
		result, err := s.GetTaxAmount(ctx, item.SalePrice, item.ChargeID)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// GetTaxBreakdown runs the batch and sums the already-rounded per-item
// values. Accumulation happens in integer cents so 2-decimal sums stay exact.
func (s *Service) GetTaxBreakdown(ctx context.Context, items []taxdomain.BatchItem) (*taxdomain.TaxBreakdown, error) {
	results, err := s.CalculateBatchTax(ctx, items)
	if err != nil {
		return nil, err
	}

	var saleCents, taxCents, totalCents int64
	for _, r := range results {
		saleCents += toCents(r.SalePrice)
		taxCents += toCents(r.TaxAmount)
		totalCents += toCents(r.TotalAmount)
	}

	return &taxdomain.TaxBreakdown{
		Items: results,
		Totals: taxdomain.BreakdownTotals{
			TotalSalePrice: fromCents(saleCents),
			TotalTaxAmount: fromCents(taxCents),
			TotalAmount:    fromCents(totalCents),
		},
	}, nil
}

func (s *Service) ActiveTaxCodes(ctx context.Context) ([]taxdomain.TaxCode, error) {
	return s.repo.ListTaxCodes(ctx, true)
}

func (s *Service) ActiveCharges(ctx context.Context) ([]taxdomain.Charge, error) {
	return s.repo.ListCharges(ctx, true)
}

func (s *Service) CreateTaxCode(ctx context.Context, req taxdomain.CreateTaxCodeRequest) (*taxdomain.TaxCode, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	record := &taxdomain.TaxCode{
		ID:        s.genID.Generate(),
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		Rate:      req.Rate,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTaxCode(ctx, record); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: tax code %s already exists", taxdomain.ErrDuplicateCode, record.Code)
		}
		return nil, err
	}

	s.log.Info("tax code created", zap.String("code", record.Code), zap.Float64("rate", record.Rate))
	return record, nil
}

func (s *Service) CreateCharge(ctx context.Context, req taxdomain.CreateChargeRequest) (*taxdomain.Charge, error) {
	taxCode, err := s.repo.FindTaxCodeByID(ctx, req.TaxCodeID)
	if err != nil {
		return nil, err
	}
	if taxCode == nil {
		return nil, fmt.Errorf("%w: tax code %s does not exist", taxdomain.ErrTaxCodeNotFound, req.TaxCodeID)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	record := &taxdomain.Charge{
		ID:        s.genID.Generate(),
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		TaxCodeID: req.TaxCodeID,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCharge(ctx, record); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: charge %s already exists", taxdomain.ErrDuplicateCode, record.Code)
		}
		return nil, err
	}

	s.log.Info("charge created", zap.String("code", record.Code), zap.String("tax_code_id", record.TaxCodeID.String()))
	return record, nil
}

func (s *Service) DisableTaxCode(ctx context.Context, id snowflake.ID) (*taxdomain.TaxCode, error) {
	code, err := s.repo.FindTaxCodeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, fmt.Errorf("%w: tax code %s does not exist", taxdomain.ErrTaxCodeNotFound, id)
	}

	code.IsActive = false
	code.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateTaxCode(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

// roundMoney rounds half away from zero to 2 decimal places.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
