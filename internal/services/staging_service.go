package services

import (
	"context"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common/validation"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

type StagingService interface {
	// IngestBatch validates and stores the whole batch as Pending records.
	// The batch is all-or-nothing: one bad record rejects the request.
	IngestBatch(ctx context.Context, actor models.Actor, in models.IngestBatchRequest) ([]models.StagingRecord, error)
	// IngestTransactions stores independently recorded movements that act
	// as matching candidates.
	IngestTransactions(ctx context.Context, actor models.Actor, drafts []models.TransactionDraft) ([]models.Transaction, error)
	Get(ctx context.Context, tenantID string, id uint64) (*models.StagingRecord, error)
	List(ctx context.Context, tenantID string, opts models.StagingFilterOptions) ([]models.StagingRecord, error)
}

type staging service

var _ StagingService = (*staging)(nil)

func (ss *staging) IngestBatch(ctx context.Context, actor models.Actor, in models.IngestBatchRequest) (out []models.StagingRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err = ss.srv.activeTenant(ctx, actor.TenantID); err != nil {
		return nil, err
	}

	records := make([]*models.StagingRecord, 0, len(in.Records))
	for _, d := range in.Records {
		occurredAt, err := time.Parse("2006-01-02", d.OccurredAt)
		if err != nil {
			return nil, err
		}
		records = append(records, &models.StagingRecord{
			StagingID:     ss.srv.idgenerator.Generate(idPrefixStaging),
			TenantID:      actor.TenantID,
			Source:        d.Source,
			Category:      d.Category,
			RawVendorText: d.RawVendorText,
			AmountMinor:   d.AmountMinor,
			Currency:      d.Currency,
			OccurredAt:    occurredAt,
		})
	}

	err = ss.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetStagingRepository().StoreBatch(ctx, records); err != nil {
			return err
		}
		for _, rec := range records {
			if err := ss.srv.appendAudit(ctx, r, actor, models.AuditActionStagingIngested, "staging_record", rec.StagingID, nil, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out = make([]models.StagingRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec)
	}
	return out, nil
}

func (ss *staging) IngestTransactions(ctx context.Context, actor models.Actor, drafts []models.TransactionDraft) (out []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = ss.srv.activeTenant(ctx, actor.TenantID); err != nil {
		return nil, err
	}

	txs := make([]*models.Transaction, 0, len(drafts))
	for _, d := range drafts {
		if err = validation.ValidateStruct(d); err != nil {
			return nil, err
		}
		occurredAt, err := time.Parse("2006-01-02", d.OccurredAt)
		if err != nil {
			return nil, err
		}
		txs = append(txs, &models.Transaction{
			TransactionID: ss.srv.idgenerator.Generate(idPrefixTxn),
			TenantID:      actor.TenantID,
			Source:        d.Source,
			VendorKey:     d.VendorKey,
			AmountMinor:   d.AmountMinor,
			Currency:      d.Currency,
			OccurredAt:    occurredAt,
		})
	}

	if err = ss.srv.sqlRepo.GetTransactionRepository().StoreBatch(ctx, txs); err != nil {
		return nil, err
	}

	out = make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *tx)
	}
	return out, nil
}

func (ss *staging) Get(ctx context.Context, tenantID string, id uint64) (out *models.StagingRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ss.srv.sqlRepo.GetStagingRepository().GetByID(ctx, tenantID, id)
}

func (ss *staging) List(ctx context.Context, tenantID string, opts models.StagingFilterOptions) (out []models.StagingRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ss.srv.sqlRepo.GetStagingRepository().List(ctx, tenantID, opts)
}
