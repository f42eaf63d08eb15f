package formula

import (
	"github.com/swiftcargo/freightd/internal/formula/service"
	"go.uber.org/fx"
)

var Module = fx.Module("formula.service",
	fx.Provide(service.NewService),
)
