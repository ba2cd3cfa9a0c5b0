package http

import (
	"context"
	"fmt"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/pesaledger/go-ledger-core/internal/common/graceful"
	commonhttp "github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/deliveries/http/health"
	"github.com/pesaledger/go-ledger-core/internal/services"

	v1account "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/account"
	v1audit "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/audit"
	v1journal "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/journal"
	v1payroll "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/payroll"
	v1recon "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/recon"
	v1report "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/report"
	v1staging "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/staging"
	v1tenant "github.com/pesaledger/go-ledger-core/internal/deliveries/http/v1/tenant"
)

type svc struct {
	app             *fiber.App
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.app.Listen(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.app.ShutdownWithContext(ctx)
		if err != nil {
			log.Error(ctx, "[SHUTDOWN] HTTP server error", log.Err(err))
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}
		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	srv *services.Services,
) *svc {
	app := fiber.New(fiber.Config{
		AppName:      conf.App.Name,
		ReadTimeout:  conf.App.HTTPTimeout,
		WriteTimeout: conf.App.HTTPTimeout,
	})

	s := &svc{
		app:             app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, nr)
	app.Use(recover.New())
	app.Use(m.Context())
	app.Use(m.Logger())

	prom := fiberprometheus.New(conf.App.Name)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	apiGroup := app.Group("/api")

	health.New(apiGroup)

	v1Group := apiGroup.Group("/v1")
	v1tenant.New(v1Group, srv.Tenant)

	// tenant-scoped routes
	v1Group.Use(m.Identity())
	v1account.New(v1Group, srv.Account)
	v1staging.New(v1Group, srv.Staging)
	v1recon.New(v1Group, srv.Recon, srv.Posting)
	v1journal.New(v1Group, srv.Posting)
	v1payroll.New(v1Group, srv.Payroll)
	v1audit.New(v1Group, srv.Audit)
	v1report.New(v1Group, srv.Report)

	app.Use(func(c *fiber.Ctx) error {
		return commonhttp.RestErrorResponse(c, fiber.StatusNotFound,
			fmt.Errorf("route '%s' does not exist in this API", c.OriginalURL()))
	})

	return s
}
