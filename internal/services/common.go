package services

import (
	"context"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

const (
	idPrefixStaging = "STG"
	idPrefixMatch   = "MCH"
	idPrefixEntry   = "JRN"
	idPrefixAudit   = "AUD"
	idPrefixTxn     = "TXN"
)

// appendAudit writes one audit row through the repository bound to ctx, so a
// call made inside Atomic lands in the same transaction as the mutation it
// describes.
func (s *Services) appendAudit(
	ctx context.Context,
	r repositories.SQLRepository,
	actor models.Actor,
	action models.AuditAction,
	entityType, entityID string,
	before, after any,
) error {
	en := &models.AuditLogEntry{
		AuditID:    s.idgenerator.Generate(idPrefixAudit),
		TenantID:   actor.TenantID,
		Actor:      actor.ActorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if before != nil {
		en.BeforeHash = models.SnapshotHash(before)
	}
	if after != nil {
		en.AfterHash = models.SnapshotHash(after)
	}
	return r.GetAuditLogRepository().Append(ctx, en)
}

// activeTenant loads a tenant and refuses inactive ones.
func (s *Services) activeTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	tenant, err := s.sqlRepo.GetTenantRepository().Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.IsActive {
		return nil, common.ErrTenantInactive
	}
	return tenant, nil
}

// reconSettings resolves the engine defaults with the tenant's overrides.
func (s *Services) reconSettings(tenant *models.Tenant) models.ReconSettings {
	return s.conf.Recon.Settings().Resolve(tenant.ReconOverrides)
}
