package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swiftcargo/freightd/internal/config"
	formuladomain "github.com/swiftcargo/freightd/internal/formula/domain"
	taxdomain "github.com/swiftcargo/freightd/internal/tax/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	formulaSvc formuladomain.Service
	taxSvc     taxdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	FormulaSvc formuladomain.Service
	TaxSvc     taxdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		formulaSvc: p.FormulaSvc,
		taxSvc:     p.TaxSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	v1 := s.engine.Group("/v1")

	calculator := v1.Group("/calculator")
	calculator.POST("/chargeable-weight", s.CalculateChargeableWeight)
	calculator.GET("/modes", s.ListTransportModes)

	tax := v1.Group("/tax")
	tax.POST("/calculate", s.CalculateTax)
	tax.POST("/breakdown", s.TaxBreakdown)

	v1.GET("/tax-codes", s.ListActiveTaxCodes)
	v1.POST("/tax-codes", s.CreateTaxCode)
	v1.POST("/tax-codes/:id/disable", s.DisableTaxCode)

	v1.GET("/charges", s.ListActiveCharges)
	v1.POST("/charges", s.CreateCharge)
}
