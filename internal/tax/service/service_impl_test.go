package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
	"github.com/swiftcargo/freightd/internal/tax/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type taxFixture struct {
	db   *gorm.DB
	node *snowflake.Node
	svc  taxdomain.Service
}

func newTaxFixture(t *testing.T) *taxFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&taxdomain.TaxCode{}, &taxdomain.Charge{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParams{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.NewRepository(db),
	})

	return &taxFixture{db: db, node: node, svc: svc}
}

func (f *taxFixture) seedTaxCode(t *testing.T, code string, rate float64, active bool) snowflake.ID {
	t.Helper()
	id := f.node.Generate()
	require.NoError(t, f.db.Create(&taxdomain.TaxCode{
		ID: id, Code: code, Name: code, Rate: rate, IsActive: active,
	}).Error)
	return id
}

func (f *taxFixture) seedCharge(t *testing.T, code string, taxCodeID snowflake.ID, active bool) snowflake.ID {
	t.Helper()
	id := f.node.Generate()
	require.NoError(t, f.db.Create(&taxdomain.Charge{
		ID: id, Code: code, Name: code, TaxCodeID: taxCodeID, IsActive: active,
	}).Error)
	return id
}

func TestGetTaxAmount(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	chargeID := f.seedCharge(t, "AIR_FREIGHT", gst18, true)

	result, err := f.svc.GetTaxAmount(context.Background(), 1000, chargeID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, result.SalePrice)
	assert.Equal(t, "GST_18", result.TaxCode)
	assert.Equal(t, 0.18, result.TaxRate)
	assert.Equal(t, 180.0, result.TaxAmount)
	assert.Equal(t, 1180.0, result.TotalAmount)
}

func TestGetTaxAmount_DecimalPrecision(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	chargeID := f.seedCharge(t, "HANDLING", gst18, true)

	// 1234.56 * 0.18 = 222.2208 -> 222.22, total from the rounded tax.
	result, err := f.svc.GetTaxAmount(context.Background(), 1234.56, chargeID)
	require.NoError(t, err)
	assert.Equal(t, 1234.56, result.SalePrice)
	assert.Equal(t, 222.22, result.TaxAmount)
	assert.Equal(t, 1456.78, result.TotalAmount)
}

func TestGetTaxAmount_ZeroRate(t *testing.T) {
	f := newTaxFixture(t)
	exempt := f.seedTaxCode(t, "GST_0", 0, true)
	chargeID := f.seedCharge(t, "DOCUMENTATION", exempt, true)

	result, err := f.svc.GetTaxAmount(context.Background(), 750.50, chargeID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TaxRate)
	assert.Equal(t, 0.0, result.TaxAmount)
	assert.Equal(t, 750.50, result.TotalAmount)
}

func TestGetTaxAmount_ChargeNotFound(t *testing.T) {
	f := newTaxFixture(t)
	missing := f.node.Generate()

	_, err := f.svc.GetTaxAmount(context.Background(), 1000, missing)
	assert.ErrorIs(t, err, taxdomain.ErrChargeNotFound)
	assert.Contains(t, err.Error(), missing.String())
}

func TestGetTaxAmount_InactiveTaxCode(t *testing.T) {
	f := newTaxFixture(t)
	retired := f.seedTaxCode(t, "VAT_OLD", 20, false)
	chargeID := f.seedCharge(t, "STORAGE", retired, true)

	_, err := f.svc.GetTaxAmount(context.Background(), 1000, chargeID)
	assert.ErrorIs(t, err, taxdomain.ErrTaxCodeInactive)
	assert.Contains(t, err.Error(), "VAT_OLD")
	assert.Contains(t, err.Error(), "is not active")
}

// An inactive charge with an active tax code still computes; only the tax
// code's active flag gates the calculation.
func TestGetTaxAmount_InactiveChargeStillTaxed(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	chargeID := f.seedCharge(t, "LEGACY_FEE", gst18, false)

	result, err := f.svc.GetTaxAmount(context.Background(), 1000, chargeID)
	require.NoError(t, err)
	assert.Equal(t, 180.0, result.TaxAmount)
}

func TestCalculateBatchTax(t *testing.T) {
	f := newTaxFixture(t)
	gst5 := f.seedTaxCode(t, "GST_5", 5, true)
	gst12 := f.seedTaxCode(t, "GST_12", 12, true)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	ocean := f.seedCharge(t, "OCEAN_FREIGHT", gst5, true)
	docs := f.seedCharge(t, "DOCUMENTATION", gst12, true)
	air := f.seedCharge(t, "AIR_FREIGHT", gst18, true)

	results, err := f.svc.CalculateBatchTax(context.Background(), []taxdomain.BatchItem{
		{SalePrice: 1000, ChargeID: ocean},
		{SalePrice: 2000, ChargeID: docs},
		{SalePrice: 3000, ChargeID: air},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Output order matches input order.
	assert.Equal(t, "GST_5", results[0].TaxCode)
	assert.Equal(t, 50.0, results[0].TaxAmount)
	assert.Equal(t, 1050.0, results[0].TotalAmount)

	assert.Equal(t, "GST_12", results[1].TaxCode)
	assert.Equal(t, 240.0, results[1].TaxAmount)
	assert.Equal(t, 2240.0, results[1].TotalAmount)

	assert.Equal(t, "GST_18", results[2].TaxCode)
	assert.Equal(t, 540.0, results[2].TaxAmount)
	assert.Equal(t, 3540.0, results[2].TotalAmount)
}

func TestCalculateBatchTax_FailFast(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	valid := f.seedCharge(t, "AIR_FREIGHT", gst18, true)
	missing := f.node.Generate()

	results, err := f.svc.CalculateBatchTax(context.Background(), []taxdomain.BatchItem{
		{SalePrice: 1000, ChargeID: valid},
		{SalePrice: 2000, ChargeID: missing},
		{SalePrice: 3000, ChargeID: valid},
	})
	assert.ErrorIs(t, err, taxdomain.ErrChargeNotFound)
	assert.Nil(t, results)
}

func TestGetTaxBreakdown(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	chargeID := f.seedCharge(t, "AIR_FREIGHT", gst18, true)

	breakdown, err := f.svc.GetTaxBreakdown(context.Background(), []taxdomain.BatchItem{
		{SalePrice: 1000, ChargeID: chargeID},
		{SalePrice: 2000, ChargeID: chargeID},
	})
	require.NoError(t, err)
	require.Len(t, breakdown.Items, 2)
	assert.Equal(t, 3000.0, breakdown.Totals.TotalSalePrice)
	assert.Equal(t, 540.0, breakdown.Totals.TotalTaxAmount)
	assert.Equal(t, 3540.0, breakdown.Totals.TotalAmount)
}

// Totals sum the per-item rounded values, not a rounding of the raw sum.
// 18% of 10.30 is 1.854 -> 1.85 and 18% of 20.30 is 3.654 -> 3.65; the total
// tax is 5.50 even though the unrounded sum (5.508) would round to 5.51.
func TestGetTaxBreakdown_SumOfRoundedValues(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	chargeID := f.seedCharge(t, "HANDLING", gst18, true)

	breakdown, err := f.svc.GetTaxBreakdown(context.Background(), []taxdomain.BatchItem{
		{SalePrice: 10.30, ChargeID: chargeID},
		{SalePrice: 20.30, ChargeID: chargeID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.85, breakdown.Items[0].TaxAmount)
	assert.Equal(t, 3.65, breakdown.Items[1].TaxAmount)
	assert.Equal(t, 5.50, breakdown.Totals.TotalTaxAmount)
	assert.Equal(t, 30.60, breakdown.Totals.TotalSalePrice)
}

func TestActiveListings(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	f.seedTaxCode(t, "VAT_OLD", 20, false)
	f.seedCharge(t, "AIR_FREIGHT", gst18, true)
	f.seedCharge(t, "LEGACY_FEE", gst18, false)

	codes, err := f.svc.ActiveTaxCodes(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "GST_18", codes[0].Code)

	charges, err := f.svc.ActiveCharges(context.Background())
	require.NoError(t, err)
	require.Len(t, charges, 1)
	assert.Equal(t, "AIR_FREIGHT", charges[0].Code)
}

func TestCreateTaxCode(t *testing.T) {
	f := newTaxFixture(t)

	code, err := f.svc.CreateTaxCode(context.Background(), taxdomain.CreateTaxCodeRequest{
		Code: "SG_GST", Name: "Singapore GST", Rate: 9,
	})
	require.NoError(t, err)
	assert.True(t, code.IsActive)
	assert.NotZero(t, code.ID)

	_, err = f.svc.CreateTaxCode(context.Background(), taxdomain.CreateTaxCodeRequest{
		Code: "SG_GST", Name: "Singapore GST", Rate: 9,
	})
	assert.ErrorIs(t, err, taxdomain.ErrDuplicateCode)

	_, err = f.svc.CreateTaxCode(context.Background(), taxdomain.CreateTaxCodeRequest{
		Code: "", Name: "Broken", Rate: 9,
	})
	assert.ErrorIs(t, err, taxdomain.ErrInvalidTaxCode)

	_, err = f.svc.CreateTaxCode(context.Background(), taxdomain.CreateTaxCodeRequest{
		Code: "NEG", Name: "Negative", Rate: -1,
	})
	assert.ErrorIs(t, err, taxdomain.ErrInvalidTaxRate)
}

func TestCreateCharge(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)

	charge, err := f.svc.CreateCharge(context.Background(), taxdomain.CreateChargeRequest{
		Code: "FUEL_SURCHARGE", Name: "Fuel Surcharge", TaxCodeID: gst18,
	})
	require.NoError(t, err)
	assert.Equal(t, gst18, charge.TaxCodeID)

	_, err = f.svc.CreateCharge(context.Background(), taxdomain.CreateChargeRequest{
		Code: "ORPHAN", Name: "Orphan", TaxCodeID: f.node.Generate(),
	})
	assert.ErrorIs(t, err, taxdomain.ErrTaxCodeNotFound)
}

func TestDisableTaxCode(t *testing.T) {
	f := newTaxFixture(t)
	gst18 := f.seedTaxCode(t, "GST_18", 18, true)
	chargeID := f.seedCharge(t, "AIR_FREIGHT", gst18, true)

	code, err := f.svc.DisableTaxCode(context.Background(), gst18)
	require.NoError(t, err)
	assert.False(t, code.IsActive)

	// Calculations against the disabled code now fail.
	_, err = f.svc.GetTaxAmount(context.Background(), 1000, chargeID)
	assert.ErrorIs(t, err, taxdomain.ErrTaxCodeInactive)
}
