package audit

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type auditHandler struct {
	auditService services.AuditService
}

// New audit handler will initialize the audit/ resources endpoint
func New(app fiber.Router, auditSrv services.AuditService) {
	ah := auditHandler{auditService: auditSrv}

	audit := app.Group("/audit")
	audit.Get("/", ah.listEntries())
}

type listAuditQuery struct {
	Action     string `query:"action"`
	EntityType string `query:"entityType"`
	EntityID   string `query:"entityId"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

func (q listAuditQuery) toFilterOpts() models.AuditFilterOptions {
	opts := models.AuditFilterOptions{Limit: q.Limit, Offset: q.Offset}
	if q.Action != "" {
		a := models.AuditAction(q.Action)
		opts.Action = &a
	}
	if q.EntityType != "" {
		opts.EntityType = &q.EntityType
	}
	if q.EntityID != "" {
		opts.EntityID = &q.EntityID
	}
	return opts
}

func (ah auditHandler) listEntries() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query listAuditQuery
		if err := c.QueryParser(&query); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		entries, err := ah.auditService.List(c.UserContext(), middleware.Actor(c).TenantID, query.toFilterOpts())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, entries, len(entries))
	}
}
