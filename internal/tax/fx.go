package tax

import (
	"github.com/swiftcargo/freightd/internal/tax/repository"
	"github.com/swiftcargo/freightd/internal/tax/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tax.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
