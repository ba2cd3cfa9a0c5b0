package repositories

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type StagingRepository interface {
	// StoreBatch inserts the whole batch in one statement and fills in the
	// generated row IDs and ingestion timestamps.
	StoreBatch(ctx context.Context, records []*models.StagingRecord) error
	GetByID(ctx context.Context, tenantID string, id uint64) (*models.StagingRecord, error)
	List(ctx context.Context, tenantID string, opts models.StagingFilterOptions) ([]models.StagingRecord, error)
	ListPending(ctx context.Context, tenantID string, limit int) ([]models.StagingRecord, error)
	// UpdateStatus transitions a record from one status to another. Returns
	// ErrStagingNotPending when the record is not in the expected status.
	UpdateStatus(ctx context.Context, tenantID string, id uint64, from, to models.StagingStatus) error
	SetVendorKey(ctx context.Context, tenantID string, id uint64, vendorKey string) error
}

type stagingRepository sqlRepo

var _ StagingRepository = (*stagingRepository)(nil)

func (s *stagingRepository) StoreBatch(ctx context.Context, records []*models.StagingRecord) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(records) == 0 {
		return nil
	}

	db := s.r.writer(ctx)

	query, args, err := buildInsertStagingBatch(records)
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
		if i >= len(records) {
			return common.ErrInternalServerError
		}
		if err = rows.Scan(&records[i].ID, &records[i].IngestedAt); err != nil {
			return err
		}
		records[i].Status = models.StagingStatusPending
		i++
	}
	return rows.Err()
}

func (s *stagingRepository) scanRecord(row interface{ Scan(...interface{}) error }) (*models.StagingRecord, error) {
	en := &models.StagingRecord{}
	err := row.Scan(
		&en.ID,
		&en.StagingID,
		&en.TenantID,
		&en.Source,
		&en.Category,
		&en.RawVendorText,
		&en.VendorKey,
		&en.AmountMinor,
		&en.Currency,
		&en.OccurredAt,
		&en.IngestedAt,
		&en.Status,
	)
	if err != nil {
		return nil, mapScanError(err)
	}
	return en, nil
}

func (s *stagingRepository) GetByID(ctx context.Context, tenantID string, id uint64) (en *models.StagingRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := s.r.reader(ctx)
	return s.scanRecord(db.QueryRowContext(ctx, queryGetStagingByID, tenantID, id))
}

func (s *stagingRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.StagingRecord, error) {
	db := s.r.reader(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StagingRecord
	for rows.Next() {
		var en models.StagingRecord
		err = rows.Scan(
			&en.ID,
			&en.StagingID,
			&en.TenantID,
			&en.Source,
			&en.Category,
			&en.RawVendorText,
			&en.VendorKey,
			&en.AmountMinor,
			&en.Currency,
			&en.OccurredAt,
			&en.IngestedAt,
			&en.Status,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	return out, rows.Err()
}

func (s *stagingRepository) List(ctx context.Context, tenantID string, opts models.StagingFilterOptions) (out []models.StagingRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	query, args, err := buildListStagingQuery(tenantID, opts)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, query, args...)
}

func (s *stagingRepository) ListPending(ctx context.Context, tenantID string, limit int) (out []models.StagingRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return s.list(ctx, queryListPendingStaging, tenantID, limit)
}

func (s *stagingRepository) UpdateStatus(ctx context.Context, tenantID string, id uint64, from, to models.StagingStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := s.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryUpdateStagingStatus, tenantID, id, to, from)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrStagingNotPending)
}

func (s *stagingRepository) SetVendorKey(ctx context.Context, tenantID string, id uint64, vendorKey string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := s.r.writer(ctx)

	res, err := db.ExecContext(ctx, querySetStagingVendorKey, tenantID, id, vendorKey)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}
