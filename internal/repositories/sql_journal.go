package repositories

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type JournalRepository interface {
	// StoreEntry persists the entry header and all of its lines. Callers
	// run it inside Atomic together with the balance adjustments.
	StoreEntry(ctx context.Context, en *models.JournalEntry) error
	GetByEntryID(ctx context.Context, tenantID, entryID string) (*models.JournalEntry, error)
	List(ctx context.Context, tenantID string, opts models.JournalFilterOptions) ([]models.JournalEntry, error)
	// ExistsReversal reports whether any entry references entryID as its
	// source, which is how double reversals are refused.
	ExistsReversal(ctx context.Context, tenantID, entryID string) (bool, error)
}

type journalRepository sqlRepo

var _ JournalRepository = (*journalRepository)(nil)

func (j *journalRepository) StoreEntry(ctx context.Context, en *models.JournalEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := j.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryInsertJournalEntry,
		en.EntryID,
		en.TenantID,
		en.EntryNo,
		en.Date,
		en.Memo,
		en.Currency,
		en.SourceRef,
	).Scan(&en.ID, &en.CreatedAt)
	if err != nil {
		return mapScanError(err)
	}

	query, args, err := buildInsertJournalLines(en.TenantID, en.ID, en.Lines)
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
		if i >= len(en.Lines) {
			return common.ErrInternalServerError
		}
		if err = rows.Scan(&en.Lines[i].ID); err != nil {
			return err
		}
		en.Lines[i].EntryID = en.ID
		i++
	}
	return rows.Err()
}

func (j *journalRepository) GetByEntryID(ctx context.Context, tenantID, entryID string) (en *models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := j.r.reader(ctx)

	en = &models.JournalEntry{}
	err = db.QueryRowContext(ctx, queryGetJournalEntryByEntryID, tenantID, entryID).Scan(
		&en.ID,
		&en.EntryID,
		&en.TenantID,
		&en.EntryNo,
		&en.Date,
		&en.Memo,
		&en.Currency,
		&en.SourceRef,
		&en.CreatedAt,
	)
	if err != nil {
		return nil, mapScanError(err)
	}

	en.Lines, err = j.linesFor(ctx, tenantID, en.ID)
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (j *journalRepository) linesFor(ctx context.Context, tenantID string, entryRowID uint64) ([]models.JournalLine, error) {
	db := j.r.reader(ctx)

	rows, err := db.QueryContext(ctx, queryGetJournalLinesByEntryID, tenantID, entryRowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.JournalLine
	for rows.Next() {
		var l models.JournalLine
		err = rows.Scan(&l.ID, &l.EntryID, &l.AccountID, &l.DebitMinor, &l.CreditMinor, &l.Position)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (j *journalRepository) List(ctx context.Context, tenantID string, opts models.JournalFilterOptions) (out []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := j.r.reader(ctx)

	query, args, err := buildListJournalEntriesQuery(tenantID, opts)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var en models.JournalEntry
		err = rows.Scan(
			&en.ID,
			&en.EntryID,
			&en.TenantID,
			&en.EntryNo,
			&en.Date,
			&en.Memo,
			&en.Currency,
			&en.SourceRef,
			&en.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Lines, err = j.linesFor(ctx, tenantID, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (j *journalRepository) ExistsReversal(ctx context.Context, tenantID, entryID string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := j.r.reader(ctx)

	err = db.QueryRowContext(ctx, queryExistsReversalForEntry, tenantID, entryID).Scan(&exists)
	return exists, err
}
