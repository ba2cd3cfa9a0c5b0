package staging

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type stagingHandler struct {
	stagingService services.StagingService
}

// New staging handler will initialize the staging/ resources endpoint
func New(app fiber.Router, stagingSrv services.StagingService) {
	sh := stagingHandler{stagingService: stagingSrv}

	staging := app.Group("/staging")
	staging.Post("/batch", sh.ingestBatch())
	staging.Get("/", sh.listRecords())
	staging.Get("/:id", sh.getRecord())

	app.Post("/transactions", sh.ingestTransactions())
}

type listStagingQuery struct {
	Status string `query:"status"`
	Source string `query:"source"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

func (q listStagingQuery) toFilterOpts() models.StagingFilterOptions {
	opts := models.StagingFilterOptions{Limit: q.Limit, Offset: q.Offset}
	if q.Status != "" {
		s := models.StagingStatus(q.Status)
		opts.Status = &s
	}
	if q.Source != "" {
		opts.Source = &q.Source
	}
	return opts
}

func (sh stagingHandler) ingestBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.IngestBatchRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		records, err := sh.stagingService.IngestBatch(c.UserContext(), middleware.Actor(c), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, records)
	}
}

func (sh stagingHandler) ingestTransactions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var drafts []models.TransactionDraft
		if err := c.BodyParser(&drafts); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		txs, err := sh.stagingService.IngestTransactions(c.UserContext(), middleware.Actor(c), drafts)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, txs)
	}
}

func (sh stagingHandler) listRecords() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query listStagingQuery
		if err := c.QueryParser(&query); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		records, err := sh.stagingService.List(c.UserContext(), middleware.Actor(c).TenantID, query.toFilterOpts())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, records, len(records))
	}
}

func (sh stagingHandler) getRecord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		rec, err := sh.stagingService.Get(c.UserContext(), middleware.Actor(c).TenantID, id)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, rec)
	}
}
