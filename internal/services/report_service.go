package services

import (
	"context"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type ReportService interface {
	// TrialBalance projects the normalized balances onto debit/credit
	// columns. Read-only; the posting engine enforces the zero invariant.
	TrialBalance(ctx context.Context, tenantID, currency string) (models.TrialBalance, error)
	Balances(ctx context.Context, tenantID string) ([]models.AccountBalance, error)
	// StreamJournal pages committed entries in entry-number order for
	// export consumers.
	StreamJournal(ctx context.Context, tenantID string, fromEntryNo uint64, limit int) ([]models.JournalEntry, error)
}

type report service

var _ ReportService = (*report)(nil)

func (rp *report) TrialBalance(ctx context.Context, tenantID, currency string) (out models.TrialBalance, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	balances, err := rp.srv.sqlRepo.GetAccountRepository().ListBalances(ctx, tenantID)
	if err != nil {
		return out, err
	}
	return models.BuildTrialBalance(tenantID, currency, time.Now().UTC(), balances), nil
}

func (rp *report) Balances(ctx context.Context, tenantID string) (out []models.AccountBalance, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rp.srv.sqlRepo.GetAccountRepository().ListBalances(ctx, tenantID)
}

func (rp *report) StreamJournal(ctx context.Context, tenantID string, fromEntryNo uint64, limit int) (out []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	opts := models.JournalFilterOptions{Limit: limit}
	if fromEntryNo > 0 {
		opts.FromEntryNo = &fromEntryNo
	}
	return rp.srv.sqlRepo.GetJournalRepository().List(ctx, tenantID, opts)
}
