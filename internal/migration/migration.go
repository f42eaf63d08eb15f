package migration

import (
	"github.com/bwmarrin/snowflake"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
	"gorm.io/gorm"
)

// This migration package ensures freightd is fully usable out of the box for
// local and self-hosted environments. Both tax tables are created
// automatically on startup.
func RunMigrations(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&taxdomain.TaxCode{},
		&taxdomain.Charge{},
	)
}

// SeedDefaults inserts a common set of freight tax codes and charges when
// the store is empty. Safe to run on every boot.
func SeedDefaults(conn *gorm.DB, genID *snowflake.Node) error {
	var count int64
	if err := conn.Model(&taxdomain.TaxCode{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	codes := []taxdomain.TaxCode{
		{ID: genID.Generate(), Code: "GST_0", Name: "GST Exempt", Rate: 0, IsActive: true},
		{ID: genID.Generate(), Code: "GST_5", Name: "GST 5%", Rate: 5, IsActive: true},
		{ID: genID.Generate(), Code: "GST_12", Name: "GST 12%", Rate: 12, IsActive: true},
		{ID: genID.Generate(), Code: "GST_18", Name: "GST 18%", Rate: 18, IsActive: true},
	}
	if err := conn.Create(&codes).Error; err != nil {
		return err
	}

	byCode := make(map[string]snowflake.ID, len(codes))
	for _, c := range codes {
		byCode[c.Code] = c.ID
	}

	charges := []taxdomain.Charge{
		{ID: genID.Generate(), Code: "OCEAN_FREIGHT", Name: "Ocean Freight", TaxCodeID: byCode["GST_5"], IsActive: true},
		{ID: genID.Generate(), Code: "AIR_FREIGHT", Name: "Air Freight", TaxCodeID: byCode["GST_18"], IsActive: true},
		{ID: genID.Generate(), Code: "HANDLING", Name: "Handling Fee", TaxCodeID: byCode["GST_18"], IsActive: true},
		{ID: genID.Generate(), Code: "CUSTOMS_CLEARANCE", Name: "Customs Clearance", TaxCodeID: byCode["GST_18"], IsActive: true},
		{ID: genID.Generate(), Code: "DOCUMENTATION", Name: "Documentation Fee", TaxCodeID: byCode["GST_12"], IsActive: true},
	}
	return conn.Create(&charges).Error
}
