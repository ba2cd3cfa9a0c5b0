package report

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type reportHandler struct {
	reportService services.ReportService
}

// New report handler will initialize the reports/ resources endpoint
func New(app fiber.Router, reportSrv services.ReportService) {
	rh := reportHandler{reportService: reportSrv}

	reports := app.Group("/reports")
	reports.Get("/trial-balance", rh.trialBalance())
	reports.Get("/balances", rh.balances())
	reports.Get("/journal", rh.streamJournal())
}

type streamJournalQuery struct {
	FromEntryNo uint64 `query:"fromEntryNo"`
	Limit       int    `query:"limit"`
}

func (rh reportHandler) trialBalance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		currency := c.Query("currency", "KES")

		tb, err := rh.reportService.TrialBalance(c.UserContext(), middleware.Actor(c).TenantID, currency)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, tb)
	}
}

func (rh reportHandler) balances() fiber.Handler {
	return func(c *fiber.Ctx) error {
		balances, err := rh.reportService.Balances(c.UserContext(), middleware.Actor(c).TenantID)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, balances, len(balances))
	}
}

func (rh reportHandler) streamJournal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query streamJournalQuery
		if err := c.QueryParser(&query); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		entries, err := rh.reportService.StreamJournal(c.UserContext(), middleware.Actor(c).TenantID, query.FromEntryNo, query.Limit)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, entries, len(entries))
	}
}
