package recon

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type reconHandler struct {
	reconService   services.ReconService
	postingService services.PostingService
}

// New recon handler will initialize the recon/ resources endpoint
func New(app fiber.Router, reconSrv services.ReconService, postingSrv services.PostingService) {
	rh := reconHandler{reconService: reconSrv, postingService: postingSrv}

	recon := app.Group("/recon")
	recon.Post("/run", rh.runBatch())
	recon.Post("/resolve", rh.resolveManual())
	recon.Get("/matches", rh.listMatches())
	recon.Post("/matches/:matchId/revoke", rh.revokeMatch())
	recon.Post("/matches/:matchId/post", rh.postFromMatch())
}

type listMatchesQuery struct {
	StagingID  *uint64 `query:"stagingId"`
	Decision   string  `query:"decision"`
	Superseded *bool   `query:"superseded"`
	Limit      int     `query:"limit"`
	Offset     int     `query:"offset"`
}

func (q listMatchesQuery) toFilterOpts() models.MatchFilterOptions {
	opts := models.MatchFilterOptions{
		StagingID:  q.StagingID,
		Superseded: q.Superseded,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	if q.Decision != "" {
		d := models.MatchDecision(q.Decision)
		opts.Decision = &d
	}
	return opts
}

func (rh reconHandler) runBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		outcome, err := rh.reconService.ReconcileBatch(c.UserContext(), middleware.Actor(c))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, outcome)
	}
}

func (rh reconHandler) resolveManual() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.ManualResolveRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		match, err := rh.reconService.ResolveManual(c.UserContext(), middleware.Actor(c), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, match)
	}
}

func (rh reconHandler) revokeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := rh.reconService.RevokeMatch(c.UserContext(), middleware.Actor(c), c.Params("matchId"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// postFromMatch turns a committed match into a journal entry via the source
// account mapping.
func (rh reconHandler) postFromMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry, err := rh.postingService.PostFromMatch(c.UserContext(), middleware.Actor(c), c.Params("matchId"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, entry)
	}
}

func (rh reconHandler) listMatches() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query listMatchesQuery
		if err := c.QueryParser(&query); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		matches, err := rh.reconService.ListMatches(c.UserContext(), middleware.Actor(c).TenantID, query.toFilterOpts())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, matches, len(matches))
	}
}
