package services

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

// AuditService only reads. Appends happen inside the mutating services, in
// the same transaction as the primary write.
type AuditService interface {
	List(ctx context.Context, tenantID string, opts models.AuditFilterOptions) ([]models.AuditLogEntry, error)
}

type audit service

var _ AuditService = (*audit)(nil)

func (a *audit) List(ctx context.Context, tenantID string, opts models.AuditFilterOptions) (out []models.AuditLogEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return a.srv.sqlRepo.GetAuditLogRepository().List(ctx, tenantID, opts)
}
