package tenant

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type tenantHandler struct {
	tenantService services.TenantService
}

// New tenant handler will initialize the tenants/ resources endpoint. These
// are operator endpoints; they address tenants by path, not by identity
// header.
func New(app fiber.Router, tenantSrv services.TenantService) {
	th := tenantHandler{tenantService: tenantSrv}

	tenants := app.Group("/tenants")
	tenants.Post("/", th.createTenant())
	tenants.Get("/:id", th.getTenant())
	tenants.Put("/:id/books-closed", th.setBooksClosed())
	tenants.Put("/:id/recon-overrides", th.updateReconOverrides())
}

type createTenantRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type setBooksClosedRequest struct {
	Until string `json:"until"`
}

func (th tenantHandler) createTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(createTenantRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		tn, err := th.tenantService.Create(c.UserContext(), req.ID, req.Name)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, tn)
	}
}

func (th tenantHandler) getTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tn, err := th.tenantService.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, tn)
	}
}

func (th tenantHandler) setBooksClosed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(setBooksClosedRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}
		until, err := time.Parse("2006-01-02", req.Until)
		if err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		if err := th.tenantService.SetBooksClosedUntil(c.UserContext(), c.Params("id"), until); err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (th tenantHandler) updateReconOverrides() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.ReconOverrides)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		if err := th.tenantService.UpdateReconOverrides(c.UserContext(), c.Params("id"), req); err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
