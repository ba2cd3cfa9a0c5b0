package journal

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type journalHandler struct {
	postingService services.PostingService
}

// New journal handler will initialize the journal/ resources endpoint
func New(app fiber.Router, postingSrv services.PostingService) {
	jh := journalHandler{postingService: postingSrv}

	journal := app.Group("/journal")
	journal.Post("/entries", jh.postEntry())
	journal.Get("/entries", jh.listEntries())
	journal.Get("/entries/:entryId", jh.getEntry())
	journal.Post("/entries/:entryId/reverse", jh.reverseEntry())
	journal.Post("/trial-balance/check", jh.checkTrialBalance())
}

type listEntriesQuery struct {
	FromEntryNo *uint64 `query:"fromEntryNo"`
	From        string  `query:"from"`
	To          string  `query:"to"`
	SourceRef   string  `query:"sourceRef"`
	Limit       int     `query:"limit"`
	Offset      int     `query:"offset"`
}

func (q listEntriesQuery) toFilterOpts() (models.JournalFilterOptions, error) {
	opts := models.JournalFilterOptions{
		FromEntryNo: q.FromEntryNo,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	if q.From != "" {
		from, err := time.Parse("2006-01-02", q.From)
		if err != nil {
			return opts, err
		}
		opts.From = &from
	}
	if q.To != "" {
		to, err := time.Parse("2006-01-02", q.To)
		if err != nil {
			return opts, err
		}
		opts.To = &to
	}
	if q.SourceRef != "" {
		opts.SourceRef = &q.SourceRef
	}
	return opts, nil
}

type reverseEntryRequest struct {
	Memo string `json:"memo"`
}

func (jh journalHandler) postEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.EntryDraft)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		entry, err := jh.postingService.Post(c.UserContext(), middleware.Actor(c), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, entry)
	}
}

func (jh journalHandler) listEntries() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query listEntriesQuery
		if err := c.QueryParser(&query); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}
		opts, err := query.toFilterOpts()
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		entries, err := jh.postingService.List(c.UserContext(), middleware.Actor(c).TenantID, opts)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, entries, len(entries))
	}
}

func (jh journalHandler) getEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry, err := jh.postingService.Get(c.UserContext(), middleware.Actor(c).TenantID, c.Params("entryId"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, entry)
	}
}

func (jh journalHandler) reverseEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(reverseEntryRequest)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(req); err != nil {
				return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
			}
		}

		entry, err := jh.postingService.Reverse(c.UserContext(), middleware.Actor(c), c.Params("entryId"), req.Memo)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, entry)
	}
}

func (jh journalHandler) checkTrialBalance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := jh.postingService.CheckTrialBalance(c.UserContext(), middleware.Actor(c)); err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, fiber.Map{"balanced": true})
	}
}
