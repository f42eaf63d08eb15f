package migration

import (
	"github.com/bwmarrin/snowflake"
	"github.com/swiftcargo/freightd/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
		if err := RunMigrations(conn); err != nil {
			return err
		}
		if cfg.SeedDefaults {
			return SeedDefaults(conn, genID)
		}
		return nil
	}),
)
