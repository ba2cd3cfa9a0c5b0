package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCurrencyCode()
	registerDate()
	registerAccountCode()
}

type ErrorValidateResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStruct validates all tagged fields and aggregates every failure,
// so a caller fixing a draft sees the full list in one round trip.
func ValidateStruct(toValidate interface{}) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var errs *multierror.Error
	if _, ok := err.(*validator.InvalidValidationError); ok {
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Field:   valErr.Field(),
				Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
			})
		}
	}

	return errs.ErrorOrNil()
}

// currencyCode: ISO-4217 alpha code, e.g. KES, IDR, USD.
func registerCurrencyCode() {
	_ = validate.RegisterValidation("currencyCode", func(fl validator.FieldLevel) bool {
		return currencyPattern.MatchString(fl.Field().String())
	})
}

// date: calendar date in 2006-01-02 form.
func registerDate() {
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// accountCode: short numeric chart-of-accounts code such as 1000 or 5200.
func registerAccountCode() {
	pattern := regexp.MustCompile(`^[0-9]{3,8}$`)
	_ = validate.RegisterValidation("accountCode", func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
}
