package repositories

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type MatchRepository interface {
	Store(ctx context.Context, en *models.ReconciliationMatch) error
	GetByMatchID(ctx context.Context, tenantID, matchID string) (*models.ReconciliationMatch, error)
	GetActiveByStagingID(ctx context.Context, tenantID string, stagingID uint64) (*models.ReconciliationMatch, error)
	List(ctx context.Context, tenantID string, opts models.MatchFilterOptions) ([]models.ReconciliationMatch, error)
	// Supersede retires an active match. Returns ErrMatchSuperseded when the
	// match was already retired.
	Supersede(ctx context.Context, tenantID, matchID string) error
}

type matchRepository sqlRepo

var _ MatchRepository = (*matchRepository)(nil)

func (m *matchRepository) Store(ctx context.Context, en *models.ReconciliationMatch) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryInsertMatch,
		en.MatchID,
		en.TenantID,
		en.StagingID,
		en.TransactionID,
		en.Confidence,
		en.Decision,
		en.Status,
		en.Candidates,
	).Scan(&en.ID, &en.CreatedAt)
	if err != nil {
		return mapScanError(err)
	}
	return nil
}

func (m *matchRepository) scanMatch(row interface{ Scan(...interface{}) error }) (*models.ReconciliationMatch, error) {
	en := &models.ReconciliationMatch{}
	err := row.Scan(
		&en.ID,
		&en.MatchID,
		&en.TenantID,
		&en.StagingID,
		&en.TransactionID,
		&en.Confidence,
		&en.Decision,
		&en.Status,
		&en.Candidates,
		&en.Superseded,
		&en.CreatedAt,
	)
	if err != nil {
		return nil, mapScanError(err)
	}
	return en, nil
}

func (m *matchRepository) GetByMatchID(ctx context.Context, tenantID, matchID string) (en *models.ReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.reader(ctx)
	return m.scanMatch(db.QueryRowContext(ctx, queryGetMatchByMatchID, tenantID, matchID))
}

func (m *matchRepository) GetActiveByStagingID(ctx context.Context, tenantID string, stagingID uint64) (en *models.ReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.reader(ctx)
	return m.scanMatch(db.QueryRowContext(ctx, queryGetActiveMatchByStagingID, tenantID, stagingID))
}

func (m *matchRepository) List(ctx context.Context, tenantID string, opts models.MatchFilterOptions) (out []models.ReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.reader(ctx)

	query, args, err := buildListMatchesQuery(tenantID, opts)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var en models.ReconciliationMatch
		err = rows.Scan(
			&en.ID,
			&en.MatchID,
			&en.TenantID,
			&en.StagingID,
			&en.TransactionID,
			&en.Confidence,
			&en.Decision,
			&en.Status,
			&en.Candidates,
			&en.Superseded,
			&en.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	return out, rows.Err()
}

func (m *matchRepository) Supersede(ctx context.Context, tenantID, matchID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := m.r.writer(ctx)

	res, err := db.ExecContext(ctx, querySupersedeMatch, tenantID, matchID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrMatchSuperseded)
}
