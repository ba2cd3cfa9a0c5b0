package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/pesaledger/go-ledger-core/internal/common"
)

type (
	RestErrorResponseModel struct {
		Status  string `json:"status" example:"error"`
		Message string `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}

	RestCollectionResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"totalRows" example:"100"`
	}
)

func RestSuccessResponse(c *fiber.Ctx, code int, in interface{}) error {
	return c.Status(code).JSON(in)
}

func RestCollectionResponse(c *fiber.Ctx, contents interface{}, total int) error {
	return c.Status(fiber.StatusOK).JSON(RestCollectionResponseModel{
		Kind:      "collection",
		Contents:  contents,
		TotalRows: total,
	})
}

func RestErrorResponse(c *fiber.Ctx, code int, err error) error {
	return c.Status(code).JSON(RestErrorResponseModel{
		Status:  "error",
		Message: err.Error(),
	})
}

func RestErrorValidationResponse(c *fiber.Ctx, err error) error {
	var merr *multierror.Error
	var details interface{}
	if errors.As(err, &merr) {
		details = merr.Errors
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(RestErrorValidationResponseModel{
		Status:  "error",
		Message: "validation error",
		Errors:  details,
	})
}

// RestServiceErrorResponse renders a service-layer failure. Aggregated
// validation errors become a 422 with per-field details; everything else is
// mapped through StatusCodeFromError.
func RestServiceErrorResponse(c *fiber.Ctx, err error) error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return RestErrorValidationResponse(c, err)
	}
	return RestErrorResponse(c, StatusCodeFromError(err), err)
}

// StatusCodeFromError maps domain error kinds onto HTTP statuses. Handlers
// use this instead of switching on sentinel errors one by one.
func StatusCodeFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrDataNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, common.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, common.ErrDependencyTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, common.ErrInvariantViolation):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
