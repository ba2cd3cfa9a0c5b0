package services

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/common/validation"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type PayrollService interface {
	// Preview computes the statutory breakdown and the resulting draft
	// without posting anything.
	Preview(ctx context.Context, tenantID string, in models.PayrollRunRequest) (models.EntryDraft, []models.PayrollBreakdown, error)
	// Run posts the payroll entry through the posting engine, so all of
	// its validation and halting rules apply.
	Run(ctx context.Context, actor models.Actor, in models.PayrollRunRequest) (*models.JournalEntry, error)
}

type payroll service

var _ PayrollService = (*payroll)(nil)

func (py *payroll) Preview(ctx context.Context, tenantID string, in models.PayrollRunRequest) (draft models.EntryDraft, breakdowns []models.PayrollBreakdown, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return draft, nil, err
	}
	if _, err = py.srv.activeTenant(ctx, tenantID); err != nil {
		return draft, nil, err
	}

	for _, line := range in.Lines {
		breakdowns = append(breakdowns, models.ComputePayrollBreakdown(line.GrossMinor))
	}
	return models.BuildPayrollDraft(in), breakdowns, nil
}

func (py *payroll) Run(ctx context.Context, actor models.Actor, in models.PayrollRunRequest) (out *models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	return py.srv.Posting.post(ctx, actor, models.BuildPayrollDraft(in), "payroll")
}
