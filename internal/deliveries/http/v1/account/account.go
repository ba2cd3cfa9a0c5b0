package account

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type accountHandler struct {
	accountService services.AccountService
}

// New account handler will initialize the accounts/ resources endpoint
func New(app fiber.Router, accountSrv services.AccountService) {
	ah := accountHandler{accountService: accountSrv}

	accounts := app.Group("/accounts")
	// fixed paths first so they are not captured by /:code
	accounts.Post("/seed", ah.seedDefaultChart())
	accounts.Get("/mappings", ah.listMappings())
	accounts.Put("/mappings", ah.upsertMapping())
	accounts.Post("/", ah.createAccount())
	accounts.Get("/", ah.getAllAccounts())
	accounts.Get("/:code", ah.getOneAccount())
	accounts.Patch("/:code", ah.updateAccount())
	accounts.Delete("/:code", ah.deactivateAccount())
}

type listAccountsQuery struct {
	Type     string `query:"type"`
	IsActive *bool  `query:"isActive"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

func (q listAccountsQuery) toFilterOpts() models.AccountFilterOptions {
	opts := models.AccountFilterOptions{
		IsActive: q.IsActive,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	if q.Type != "" {
		t := models.AccountType(q.Type)
		opts.Type = &t
	}
	return opts
}

func (ah accountHandler) createAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.CreateAccountRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		res, err := ah.accountService.Create(c.UserContext(), middleware.Actor(c), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, res)
	}
}

func (ah accountHandler) getAllAccounts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query listAccountsQuery
		if err := c.QueryParser(&query); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		accounts, err := ah.accountService.List(c.UserContext(), middleware.Actor(c).TenantID, query.toFilterOpts())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, accounts, len(accounts))
	}
}

func (ah accountHandler) getOneAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := ah.accountService.Get(c.UserContext(), middleware.Actor(c).TenantID, c.Params("code"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, res)
	}
}

func (ah accountHandler) updateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.UpdateAccountRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		res, err := ah.accountService.Update(c.UserContext(), middleware.Actor(c), c.Params("code"), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, res)
	}
}

func (ah accountHandler) deactivateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ah.accountService.Deactivate(c.UserContext(), middleware.Actor(c), c.Params("code")); err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (ah accountHandler) seedDefaultChart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		created, err := ah.accountService.SeedDefaultChart(c.UserContext(), middleware.Actor(c))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, created)
	}
}

func (ah accountHandler) upsertMapping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.UpsertAccountMappingRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		res, err := ah.accountService.UpsertMapping(c.UserContext(), middleware.Actor(c), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, res)
	}
}

func (ah accountHandler) listMappings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mappings, err := ah.accountService.ListMappings(c.UserContext(), middleware.Actor(c).TenantID)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestCollectionResponse(c, mappings, len(mappings))
	}
}
