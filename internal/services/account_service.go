package services

import (
	"context"
	"errors"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/common/validation"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

type AccountService interface {
	Create(ctx context.Context, actor models.Actor, in models.CreateAccountRequest) (*models.Account, error)
	Get(ctx context.Context, tenantID, code string) (*models.Account, error)
	List(ctx context.Context, tenantID string, opts models.AccountFilterOptions) ([]models.Account, error)
	Update(ctx context.Context, actor models.Actor, code string, in models.UpdateAccountRequest) (*models.Account, error)
	Deactivate(ctx context.Context, actor models.Actor, code string) error
	// SeedDefaultChart creates the default chart for a fresh tenant. Codes
	// that already exist are left alone.
	SeedDefaultChart(ctx context.Context, actor models.Actor) ([]models.Account, error)
	UpsertMapping(ctx context.Context, actor models.Actor, in models.UpsertAccountMappingRequest) (*models.AccountMapping, error)
	ListMappings(ctx context.Context, tenantID string) ([]models.AccountMapping, error)
}

type account service

var _ AccountService = (*account)(nil)

func (as *account) Create(ctx context.Context, actor models.Actor, in models.CreateAccountRequest) (out *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err = as.srv.activeTenant(ctx, actor.TenantID); err != nil {
		return nil, err
	}

	en := &models.Account{
		TenantID:      actor.TenantID,
		Code:          in.Code,
		Name:          in.Name,
		Type:          in.Type,
		NormalBalance: models.NormalBalanceForType(in.Type),
	}

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetAccountRepository().Create(ctx, en); err != nil {
			return err
		}
		return as.srv.appendAudit(ctx, r, actor, models.AuditActionAccountCreated, "account", en.Code, nil, en)
	})
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (as *account) Get(ctx context.Context, tenantID, code string) (out *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return as.srv.sqlRepo.GetAccountRepository().GetByCode(ctx, tenantID, code)
}

func (as *account) List(ctx context.Context, tenantID string, opts models.AccountFilterOptions) (out []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return as.srv.sqlRepo.GetAccountRepository().List(ctx, tenantID, opts)
}

func (as *account) Update(ctx context.Context, actor models.Actor, code string, in models.UpdateAccountRequest) (out *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	accRepo := as.srv.sqlRepo.GetAccountRepository()
	en, err := accRepo.GetByCode(ctx, actor.TenantID, code)
	if err != nil {
		return nil, err
	}
	before := *en

	if in.Name != nil {
		en.Name = *in.Name
	}
	if in.Type != nil && *in.Type != en.Type {
		// The type (and with it the normal side) freezes once the first
		// line posts against the account.
		posted, err := accRepo.HasPostings(ctx, actor.TenantID, en.ID)
		if err != nil {
			return nil, err
		}
		if posted {
			return nil, common.ErrAccountTypeLocked
		}
		en.Type = *in.Type
		en.NormalBalance = models.NormalBalanceForType(*in.Type)
	}

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetAccountRepository().Update(ctx, en); err != nil {
			return err
		}
		return as.srv.appendAudit(ctx, r, actor, models.AuditActionAccountUpdated, "account", en.Code, before, en)
	})
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (as *account) Deactivate(ctx context.Context, actor models.Actor, code string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	en, err := as.srv.sqlRepo.GetAccountRepository().GetByCode(ctx, actor.TenantID, code)
	if err != nil {
		return err
	}

	return as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetAccountRepository().Deactivate(ctx, actor.TenantID, code); err != nil {
			return err
		}
		return as.srv.appendAudit(ctx, r, actor, models.AuditActionAccountDeactivated, "account", code, en, nil)
	})
}

func (as *account) SeedDefaultChart(ctx context.Context, actor models.Actor) (out []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = as.srv.activeTenant(ctx, actor.TenantID); err != nil {
		return nil, err
	}

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		accRepo := r.GetAccountRepository()
		for _, entry := range models.DefaultChart {
			en := &models.Account{
				TenantID:      actor.TenantID,
				Code:          entry.Code,
				Name:          entry.Name,
				Type:          entry.Type,
				NormalBalance: models.NormalBalanceForType(entry.Type),
			}
			if err := accRepo.Create(ctx, en); err != nil {
				if errors.Is(err, common.ErrAccountCodeTaken) {
					continue
				}
				return err
			}
			if err := as.srv.appendAudit(ctx, r, actor, models.AuditActionAccountCreated, "account", en.Code, nil, en); err != nil {
				return err
			}
			out = append(out, *en)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (as *account) UpsertMapping(ctx context.Context, actor models.Actor, in models.UpsertAccountMappingRequest) (out *models.AccountMapping, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	accRepo := as.srv.sqlRepo.GetAccountRepository()
	for _, code := range []string{in.DebitAccountCode, in.CreditAccountCode} {
		acc, err := accRepo.GetByCode(ctx, actor.TenantID, code)
		if err != nil {
			return nil, err
		}
		if !acc.IsActive {
			return nil, common.ErrAccountInactive
		}
	}

	en := &models.AccountMapping{
		TenantID:          actor.TenantID,
		Source:            in.Source,
		Category:          in.Category,
		DebitAccountCode:  in.DebitAccountCode,
		CreditAccountCode: in.CreditAccountCode,
	}

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetAccountMappingRepository().Upsert(ctx, en); err != nil {
			return err
		}
		return as.srv.appendAudit(ctx, r, actor, models.AuditActionMappingUpserted, "account_mapping", en.Source, nil, en)
	})
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (as *account) ListMappings(ctx context.Context, tenantID string) (out []models.AccountMapping, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return as.srv.sqlRepo.GetAccountMappingRepository().List(ctx, tenantID)
}
