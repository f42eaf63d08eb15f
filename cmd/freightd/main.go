package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/swiftcargo/freightd/internal/config"
	"github.com/swiftcargo/freightd/internal/formula"
	"github.com/swiftcargo/freightd/internal/logger"
	"github.com/swiftcargo/freightd/internal/migration"
	"github.com/swiftcargo/freightd/internal/server"
	"github.com/swiftcargo/freightd/internal/tax"
	"github.com/swiftcargo/freightd/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,

		formula.Module,
		tax.Module,

		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
