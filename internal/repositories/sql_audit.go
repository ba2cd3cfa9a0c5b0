package repositories

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type AuditLogRepository interface {
	// Append writes one immutable audit row. There is no update or delete.
	Append(ctx context.Context, en *models.AuditLogEntry) error
	List(ctx context.Context, tenantID string, opts models.AuditFilterOptions) ([]models.AuditLogEntry, error)
}

type auditLogRepository sqlRepo

var _ AuditLogRepository = (*auditLogRepository)(nil)

func (a *auditLogRepository) Append(ctx context.Context, en *models.AuditLogEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryInsertAuditLog,
		en.AuditID,
		en.TenantID,
		en.Actor,
		en.Action,
		en.EntityType,
		en.EntityID,
		en.BeforeHash,
		en.AfterHash,
	).Scan(&en.ID, &en.CreatedAt)
	if err != nil {
		return mapScanError(err)
	}
	return nil
}

func (a *auditLogRepository) List(ctx context.Context, tenantID string, opts models.AuditFilterOptions) (out []models.AuditLogEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.reader(ctx)

	query, args, err := buildListAuditLogQuery(tenantID, opts)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var en models.AuditLogEntry
		err = rows.Scan(
			&en.ID,
			&en.AuditID,
			&en.TenantID,
			&en.Actor,
			&en.Action,
			&en.EntityType,
			&en.EntityID,
			&en.BeforeHash,
			&en.AfterHash,
			&en.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, en)
	}
	return out, rows.Err()
}
