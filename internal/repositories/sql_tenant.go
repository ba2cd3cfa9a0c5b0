package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type TenantRepository interface {
	Get(ctx context.Context, tenantID string) (*models.Tenant, error)
	Create(ctx context.Context, tenant *models.Tenant) error
	// NextEntryNo atomically bumps and returns the tenant's journal entry
	// counter. Must run inside the commit transaction.
	NextEntryNo(ctx context.Context, tenantID string) (uint64, error)
	HaltPosting(ctx context.Context, tenantID string) error
	SetBooksClosedUntil(ctx context.Context, tenantID string, until time.Time) error
	UpdateReconOverrides(ctx context.Context, tenantID string, overrides *models.ReconOverrides) error
}

type tenantRepository sqlRepo

var _ TenantRepository = (*tenantRepository)(nil)

func (t *tenantRepository) Get(ctx context.Context, tenantID string) (en *models.Tenant, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.reader(ctx)

	en = &models.Tenant{}
	var rawOverrides []byte
	err = db.QueryRowContext(ctx, queryGetTenant, tenantID).Scan(
		&en.ID,
		&en.Name,
		&en.IsActive,
		&en.BooksClosedUntil,
		&en.PostingHalted,
		&en.LastEntryNo,
		&rawOverrides,
		&en.CreatedAt,
		&en.UpdatedAt,
	)
	if err != nil {
		return nil, mapScanError(err)
	}

	if len(rawOverrides) > 0 {
		en.ReconOverrides = &models.ReconOverrides{}
		if err = json.Unmarshal(rawOverrides, en.ReconOverrides); err != nil {
			return nil, err
		}
	}

	return en, nil
}

func (t *tenantRepository) Create(ctx context.Context, tenant *models.Tenant) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryInsertTenant, tenant.ID, tenant.Name).
		Scan(&tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return mapScanError(err)
	}
	tenant.IsActive = true
	return nil
}

func (t *tenantRepository) NextEntryNo(ctx context.Context, tenantID string) (no uint64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryNextEntryNo, tenantID).Scan(&no)
	if err != nil {
		return 0, mapScanError(err)
	}
	return no, nil
}

func (t *tenantRepository) HaltPosting(ctx context.Context, tenantID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryHaltPosting, tenantID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}

func (t *tenantRepository) SetBooksClosedUntil(ctx context.Context, tenantID string, until time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	res, err := db.ExecContext(ctx, querySetBooksClosedUntil, tenantID, until)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}

func (t *tenantRepository) UpdateReconOverrides(ctx context.Context, tenantID string, overrides *models.ReconOverrides) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := t.r.writer(ctx)

	var raw []byte
	if overrides != nil {
		if raw, err = json.Marshal(overrides); err != nil {
			return err
		}
	}

	res, err := db.ExecContext(ctx, queryUpdateReconOverrides, tenantID, raw)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}
