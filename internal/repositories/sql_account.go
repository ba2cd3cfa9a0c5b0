package repositories

import (
	"context"
	"errors"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
)

type AccountRepository interface {
	Create(ctx context.Context, en *models.Account) error
	GetByCode(ctx context.Context, tenantID, code string) (*models.Account, error)
	GetByCodes(ctx context.Context, tenantID string, codes []string) (map[string]models.Account, error)
	GetByID(ctx context.Context, tenantID string, id uint64) (*models.Account, error)
	List(ctx context.Context, tenantID string, opts models.AccountFilterOptions) ([]models.Account, error)
	Update(ctx context.Context, en *models.Account) error
	Deactivate(ctx context.Context, tenantID, code string) error
	HasPostings(ctx context.Context, tenantID string, accountID uint64) (bool, error)
	// AdjustBalance applies one normalized minor-unit delta as an atomic
	// increment. Only the posting engine calls this, inside Atomic.
	AdjustBalance(ctx context.Context, tenantID string, accountID uint64, deltaMinor int64) error
	ListBalances(ctx context.Context, tenantID string) ([]models.AccountBalance, error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (a *accountRepository) Create(ctx context.Context, en *models.Account) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.writer(ctx)

	err = db.QueryRowContext(ctx, queryInsertAccount,
		en.TenantID,
		en.Code,
		en.Name,
		en.Type,
		en.NormalBalance,
	).Scan(&en.ID, &en.CreatedAt, &en.UpdatedAt)
	if err != nil {
		if errors.Is(mapScanError(err), common.ErrConflict) {
			return common.ErrAccountCodeTaken
		}
		return err
	}
	en.IsActive = true
	return nil
}

func (a *accountRepository) scanAccount(row interface{ Scan(...interface{}) error }) (*models.Account, error) {
	en := &models.Account{}
	err := row.Scan(
		&en.ID,
		&en.TenantID,
		&en.Code,
		&en.Name,
		&en.Type,
		&en.NormalBalance,
		&en.IsActive,
		&en.CreatedAt,
		&en.UpdatedAt,
	)
	if err != nil {
		return nil, mapScanError(err)
	}
	return en, nil
}

func (a *accountRepository) GetByCode(ctx context.Context, tenantID, code string) (en *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.reader(ctx)
	return a.scanAccount(db.QueryRowContext(ctx, queryGetAccountByCode, tenantID, code))
}

func (a *accountRepository) GetByID(ctx context.Context, tenantID string, id uint64) (en *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.reader(ctx)
	return a.scanAccount(db.QueryRowContext(ctx, queryGetAccountByID, tenantID, id))
}

func (a *accountRepository) GetByCodes(ctx context.Context, tenantID string, codes []string) (out map[string]models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	accounts, err := a.List(ctx, tenantID, models.AccountFilterOptions{Codes: codes})
	if err != nil {
		return nil, err
	}

	out = make(map[string]models.Account, len(accounts))
	for _, acc := range accounts {
		out[acc.Code] = acc
	}
	return out, nil
}

func (a *accountRepository) List(ctx context.Context, tenantID string, opts models.AccountFilterOptions) (out []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.reader(ctx)

	query, args, err := buildListAccountsQuery(tenantID, opts)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var en models.Account
		err = rows.Scan(
			&en.ID,
			&en.TenantID,
			&en.Code,
			&en.Name,
			&en.Type,
			&en.NormalBalance,
			&en.IsActive,
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

func (a *accountRepository) Update(ctx context.Context, en *models.Account) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryUpdateAccount,
		en.TenantID,
		en.ID,
		en.Name,
		en.Type,
		en.NormalBalance,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}

func (a *accountRepository) Deactivate(ctx context.Context, tenantID, code string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryDeactivateAccount, tenantID, code)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrDataNotFound)
}

func (a *accountRepository) HasPostings(ctx context.Context, tenantID string, accountID uint64) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.reader(ctx)

	err = db.QueryRowContext(ctx, queryAccountHasPostings, tenantID, accountID).Scan(&exists)
	return exists, err
}

func (a *accountRepository) AdjustBalance(ctx context.Context, tenantID string, accountID uint64, deltaMinor int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.writer(ctx)

	res, err := db.ExecContext(ctx, queryAdjustAccountBalance, tenantID, accountID, deltaMinor)
	if err != nil {
		return err
	}
	return requireRowAffected(res, common.ErrAccountInactive)
}

func (a *accountRepository) ListBalances(ctx context.Context, tenantID string) (out []models.AccountBalance, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := a.r.reader(ctx)

	rows, err := db.QueryContext(ctx, queryListAccountBalances, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b models.AccountBalance
		err = rows.Scan(
			&b.TenantID,
			&b.AccountID,
			&b.AccountCode,
			&b.AccountName,
			&b.Type,
			&b.NormalSide,
			&b.BalanceMinor,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
