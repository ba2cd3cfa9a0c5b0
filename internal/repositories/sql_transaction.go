package repositories

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type TransactionRepository interface {
	StoreBatch(ctx context.Context, txs []*models.Transaction) error
	GetByID(ctx context.Context, tenantID string, id uint64) (*models.Transaction, error)
	List(ctx context.Context, tenantID string, opts models.TransactionFilterOptions) ([]models.Transaction, error)
	ListCandidates(ctx context.Context, tenantID string, window CandidateWindow) ([]models.Transaction, error)
	// Claim marks a transaction reconciled on behalf of a match. Returns
	// ErrTransactionClaimed when another match got there first.
	Claim(ctx context.Context, tenantID string, id uint64, matchID string) error
	// Release undoes a claim held by the named match, for revocations.
	Release(ctx context.Context, tenantID string, id uint64, matchID string) error
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (t *transactionRepository) StoreBatch(ctx context.Context, txs []*models.Transaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(txs) == 0 {
		return nil
	}

	db := t.r.writer(ctx)

	query, args, err := buildInsertTransactionBatch(txs)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return mapScanError(err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(txs) {
			return common.ErrInternalServerError
		}
		if err = rows.Scan(&txs[i].ID, &txs[i].CreatedAt); err != nil {
			return err
		}
		i++
	}
	return rows.Err()
}

func (t *transactionRepository) GetByID(ctx context.Context, tenantID string, id uint64) (en *models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.reader(ctx)

	en = &models.Transaction{}
	err = db.QueryRowContext(ctx, queryGetTransactionByID, tenantID, id).Scan(
		&en.ID,
		&en.TransactionID,
		&en.TenantID,
		&en.Source,
		&en.VendorKey,
		&en.AmountMinor,
		&en.Currency,
		&en.OccurredAt,
		&en.Reconciled,
		&en.ClaimedByMatchID,
		&en.CreatedAt,
	)
	if err != nil {
		return nil, mapScanError(err)
	}
	return en, nil
}

func (t *transactionRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	db := t.r.reader(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var en models.Transaction
		err = rows.Scan(
			&en.ID,
			&en.TransactionID,
			&en.TenantID,
			&en.Source,
			&en.VendorKey,
			&en.AmountMinor,
			&en.Currency,
			&en.OccurredAt,
			&en.Reconciled,
			&en.ClaimedByMatchID,
			&en.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	return out, rows.Err()
}

func (t *transactionRepository) List(ctx context.Context, tenantID string, opts models.TransactionFilterOptions) (out []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	query, args, err := buildListTransactionsQuery(tenantID, opts)
	if err != nil {
		return nil, err
	}
	return t.list(ctx, query, args...)
}

func (t *transactionRepository) ListCandidates(ctx context.Context, tenantID string, window CandidateWindow) (out []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return t.list(ctx, queryListCandidateTransactions,
		tenantID,
		window.Currency,
		window.AmountMinorLow,
		window.AmountMinorHi,
		window.OccurredFrom,
		window.OccurredTo,
	)
}

func (t *transactionRepository) Claim(ctx context.Context, tenantID string, id uint64, matchID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryClaimTransaction, tenantID, id, matchID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrTransactionClaimed)
}

func (t *transactionRepository) Release(ctx context.Context, tenantID string, id uint64, matchID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryReleaseTransaction, tenantID, id, matchID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}
