// Package middleware carries the request-scoped plumbing for the fiber
// server: correlation ids, tenant identity and request logging.
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"

	commonhttp "github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/models"
)

const (
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderTenantID      = "X-Tenant-ID"
	HeaderActorID       = "X-Actor-ID"
)

const actorLocalKey = "ledger.actor"

type AppMiddleware struct {
	conf config.Config
	nr   *newrelic.Application
}

func NewMiddleware(conf config.Config, nr *newrelic.Application) AppMiddleware {
	return AppMiddleware{conf: conf, nr: nr}
}

// Context assigns a correlation id and, when newrelic is wired, opens the
// web transaction for the request. Both travel on the user context.
func (m AppMiddleware) Context() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cid := c.Get(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Set(HeaderCorrelationID, cid)

		ctx := log.InjectFields(c.UserContext(), log.String("correlationId", cid))

		if m.nr != nil {
			txn := m.nr.StartTransaction(c.Method() + " " + c.Route().Path)
			txn.AddAttribute("correlationId", cid)
			defer txn.End()
			ctx = newrelic.NewContext(ctx, txn)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

func (m AppMiddleware) Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info(c.UserContext(), "[HTTP.REQUEST]",
			log.String("method", c.Method()),
			log.String("path", c.Path()),
			log.Int("status", c.Response().StatusCode()),
			log.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// Identity resolves the acting tenant and user from headers. Every v1 route
// is tenant-scoped, so a missing tenant id fails the request outright.
func (m AppMiddleware) Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID := c.Get(HeaderTenantID)
		if tenantID == "" {
			return commonhttp.RestErrorResponse(c, fiber.StatusBadRequest,
				errors.New("missing "+HeaderTenantID+" header"))
		}

		actorID := c.Get(HeaderActorID)
		if actorID == "" {
			actorID = "system"
		}

		actor := models.Actor{TenantID: tenantID, ActorID: actorID}
		c.Locals(actorLocalKey, actor)
		c.SetUserContext(log.InjectFields(c.UserContext(),
			log.String("tenantId", tenantID),
			log.String("actorId", actorID),
		))
		return c.Next()
	}
}

// Actor returns the identity stored by Identity. Routes registered outside
// the identity group get a zero Actor.
func Actor(c *fiber.Ctx) models.Actor {
	actor, _ := c.Locals(actorLocalKey).(models.Actor)
	return actor
}
