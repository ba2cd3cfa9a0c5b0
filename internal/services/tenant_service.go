package services

import (
	"context"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type TenantService interface {
	Create(ctx context.Context, tenantID, name string) (*models.Tenant, error)
	Get(ctx context.Context, tenantID string) (*models.Tenant, error)
	// SetBooksClosedUntil moves the cutoff date before which no entry may
	// be posted.
	SetBooksClosedUntil(ctx context.Context, tenantID string, until time.Time) error
	UpdateReconOverrides(ctx context.Context, tenantID string, overrides *models.ReconOverrides) error
}

type tenant service

var _ TenantService = (*tenant)(nil)

func (ts *tenant) Create(ctx context.Context, tenantID, name string) (out *models.Tenant, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	out = &models.Tenant{ID: tenantID, Name: name}
	if err = ts.srv.sqlRepo.GetTenantRepository().Create(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ts *tenant) Get(ctx context.Context, tenantID string) (out *models.Tenant, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ts.srv.sqlRepo.GetTenantRepository().Get(ctx, tenantID)
}

func (ts *tenant) SetBooksClosedUntil(ctx context.Context, tenantID string, until time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ts.srv.sqlRepo.GetTenantRepository().SetBooksClosedUntil(ctx, tenantID, until)
}

func (ts *tenant) UpdateReconOverrides(ctx context.Context, tenantID string, overrides *models.ReconOverrides) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ts.srv.sqlRepo.GetTenantRepository().UpdateReconOverrides(ctx, tenantID, overrides)
}
