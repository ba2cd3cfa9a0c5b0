package repositories

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type AccountMappingRepository interface {
	Upsert(ctx context.Context, en *models.AccountMapping) error
	// Resolve returns the mapping for a source and category, falling back
	// to the source-wide mapping when no category-specific one exists.
	Resolve(ctx context.Context, tenantID, source, category string) (*models.AccountMapping, error)
	List(ctx context.Context, tenantID string) ([]models.AccountMapping, error)
}

type accountMappingRepository sqlRepo

var _ AccountMappingRepository = (*accountMappingRepository)(nil)

func (m *accountMappingRepository) Upsert(ctx context.Context, en *models.AccountMapping) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryUpsertAccountMapping,
		en.TenantID,
		en.Source,
		en.Category,
		en.DebitAccountCode,
		en.CreditAccountCode,
	).Scan(&en.ID, &en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		return mapScanError(err)
	}
	return nil
}

func (m *accountMappingRepository) Resolve(ctx context.Context, tenantID, source, category string) (en *models.AccountMapping, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.reader(ctx)

	en = &models.AccountMapping{}
	err = db.QueryRowContext(ctx, queryResolveAccountMapping, tenantID, source, category).Scan(
		&en.ID,
		&en.TenantID,
		&en.Source,
		&en.Category,
		&en.DebitAccountCode,
		&en.CreditAccountCode,
		&en.CreatedAt,
		&en.UpdatedAt,
	)
	if err != nil {
		return nil, mapScanError(err)
	}
	return en, nil
}

func (m *accountMappingRepository) List(ctx context.Context, tenantID string) (out []models.AccountMapping, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.reader(ctx)

	rows, err := db.QueryContext(ctx, queryListAccountMappings, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var en models.AccountMapping
		err = rows.Scan(
			&en.ID,
			&en.TenantID,
			&en.Source,
			&en.Category,
			&en.DebitAccountCode,
			&en.CreditAccountCode,
			&en.CreatedAt,
			&en.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	return out, rows.Err()
}
