package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pesaledger/go-ledger-core/internal/models"
)

var (
	accountColumns = `
		"id",
		"tenantId",
		"code",
		"name",
		"type",
		"normalBalance",
		"isActive",
		"createdAt",
		"updatedAt"`

	queryInsertAccount = `
	INSERT INTO account ("tenantId", "code", "name", "type", "normalBalance", "isActive")
	VALUES ($1, $2, $3, $4, $5, TRUE)
	RETURNING "id", "createdAt", "updatedAt"`

	queryGetAccountByCode = `
	SELECT ` + accountColumns + `
	FROM account
	WHERE "tenantId" = $1 AND "code" = $2`

	queryGetAccountByID = `
	SELECT ` + accountColumns + `
	FROM account
	WHERE "tenantId" = $1 AND "id" = $2`

	queryUpdateAccount = `
	UPDATE account
	SET "name" = $3, "type" = $4, "normalBalance" = $5, "updatedAt" = now()
	WHERE "tenantId" = $1 AND "id" = $2`

	queryDeactivateAccount = `
	UPDATE account
	SET "isActive" = FALSE, "updatedAt" = now()
	WHERE "tenantId" = $1 AND "code" = $2 AND "isActive" = TRUE`

	queryAccountHasPostings = `
	SELECT EXISTS (
		SELECT 1
		FROM journal_line
		WHERE "tenantId" = $1 AND "accountId" = $2
	)`

	// Balance movement is an atomic increment so two commits against the
	// same account never read-modify-write each other's update.
	queryAdjustAccountBalance = `
	UPDATE account
	SET "balanceMinor" = "balanceMinor" + $3, "updatedAt" = now()
	WHERE "tenantId" = $1 AND "id" = $2 AND "isActive" = TRUE`

	queryListAccountBalances = `
	SELECT
		"tenantId",
		"id",
		"code",
		"name",
		"type",
		"normalBalance",
		"balanceMinor",
		"updatedAt"
	FROM account
	WHERE "tenantId" = $1
	ORDER BY "code" ASC`
)

func buildListAccountsQuery(tenantID string, opts models.AccountFilterOptions) (string, []interface{}, error) {
	builder := sq.
		Select(`"id"`, `"tenantId"`, `"code"`, `"name"`, `"type"`, `"normalBalance"`, `"isActive"`, `"createdAt"`, `"updatedAt"`).
		From("account").
		Where(sq.Eq{`"tenantId"`: tenantID}).
		OrderBy(`"code" ASC`).
		PlaceholderFormat(sq.Dollar)

	if opts.Type != nil {
		builder = builder.Where(sq.Eq{`"type"`: *opts.Type})
	}
	if opts.IsActive != nil {
		builder = builder.Where(sq.Eq{`"isActive"`: *opts.IsActive})
	}
	if len(opts.Codes) > 0 {
		builder = builder.Where(sq.Eq{`"code"`: opts.Codes})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}
