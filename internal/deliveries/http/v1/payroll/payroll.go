package payroll

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pesaledger/go-ledger-core/internal/common/http"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type payrollHandler struct {
	payrollService services.PayrollService
}

// New payroll handler will initialize the payroll/ resources endpoint
func New(app fiber.Router, payrollSrv services.PayrollService) {
	ph := payrollHandler{payrollService: payrollSrv}

	payroll := app.Group("/payroll")
	payroll.Post("/preview", ph.preview())
	payroll.Post("/run", ph.run())
}

type previewResponse struct {
	Draft      models.EntryDraft         `json:"draft"`
	Breakdowns []models.PayrollBreakdown `json:"breakdowns"`
}

func (ph payrollHandler) preview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.PayrollRunRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		draft, breakdowns, err := ph.payrollService.Preview(c.UserContext(), middleware.Actor(c).TenantID, *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusOK, previewResponse{Draft: draft, Breakdowns: breakdowns})
	}
}

func (ph payrollHandler) run() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(models.PayrollRunRequest)
		if err := c.BodyParser(req); err != nil {
			return http.RestErrorResponse(c, fiber.StatusBadRequest, err)
		}

		entry, err := ph.payrollService.Run(c.UserContext(), middleware.Actor(c), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}
		return http.RestSuccessResponse(c, fiber.StatusCreated, entry)
	}
}
