package common

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these so callers can
// classify with errors.Is without matching message text.
var (
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("conflict")
	ErrDataNotFound        = errors.New("data not found")
	ErrDependencyTimeout   = errors.New("dependency timeout")
	ErrInvariantViolation  = errors.New("invariant violation")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	ErrTenantInactive       = fmt.Errorf("%w: tenant is inactive", ErrValidation)
	ErrAccountInactive      = fmt.Errorf("%w: account is inactive", ErrValidation)
	ErrAccountCodeTaken     = fmt.Errorf("%w: account code already in use", ErrConflict)
	ErrAccountTypeLocked    = fmt.Errorf("%w: account type is immutable once posted against", ErrValidation)
	ErrUnbalancedEntry      = fmt.Errorf("%w: total debits do not equal total credits", ErrValidation)
	ErrEmptyEntry           = fmt.Errorf("%w: journal entry has no lines", ErrValidation)
	ErrBothSidesSet         = fmt.Errorf("%w: journal line must have exactly one nonzero side", ErrValidation)
	ErrBooksClosed          = fmt.Errorf("%w: entry date is before the books-closed cutoff", ErrValidation)
	ErrPostingHalted        = fmt.Errorf("%w: posting halted for tenant pending manual intervention", ErrInvariantViolation)
	ErrTrialBalanceNonZero  = fmt.Errorf("%w: trial balance is nonzero", ErrInvariantViolation)
	ErrNoTargetAccount      = fmt.Errorf("%w: no target account mapping for staging source", ErrValidation)
	ErrCurrencyMismatch     = fmt.Errorf("%w: currency mismatch", ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be a positive minor-unit integer", ErrValidation)
	ErrTransactionClaimed   = fmt.Errorf("%w: transaction already claimed by another match", ErrConflict)
	ErrMatchSuperseded      = fmt.Errorf("%w: match has been superseded", ErrConflict)
	ErrStagingNotPending    = fmt.Errorf("%w: staging record is not awaiting resolution", ErrValidation)
	ErrEntryAlreadyReversed = fmt.Errorf("%w: journal entry already reversed", ErrConflict)
	ErrNormalizerTimeout    = fmt.Errorf("%w: vendor normalizer did not answer in time", ErrDependencyTimeout)
)
