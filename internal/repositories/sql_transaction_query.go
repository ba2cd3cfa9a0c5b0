package repositories

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pesaledger/go-ledger-core/internal/models"
)

var (
	transactionColumns = `
		"id",
		"transactionId",
		"tenantId",
		"source",
		"vendorKey",
		"amountMinor",
		"currency",
		"occurredAt",
		"reconciled",
		"claimedByMatchId",
		"createdAt"`

	queryGetTransactionByID = `
	SELECT ` + transactionColumns + `
	FROM transaction
	WHERE "tenantId" = $1 AND "id" = $2`

	// Candidate window: same currency, amount inside the tolerance band,
	// occurrence inside the day window, and not yet claimed.
	queryListCandidateTransactions = `
	SELECT ` + transactionColumns + `
	FROM transaction
	WHERE "tenantId" = $1
		AND "currency" = $2
		AND "amountMinor" BETWEEN $3 AND $4
		AND "occurredAt" BETWEEN $5 AND $6
		AND "reconciled" = FALSE
	ORDER BY "occurredAt" DESC, "id" ASC`

	// The claim is a compare-and-set on reconciled: whichever commit runs
	// the update first wins, every later one affects zero rows.
	queryClaimTransaction = `
	UPDATE transaction
	SET "reconciled" = TRUE, "claimedByMatchId" = $3
	WHERE "tenantId" = $1 AND "id" = $2 AND "reconciled" = FALSE`

	// Release only undoes the claim held by the named match.
	queryReleaseTransaction = `
	UPDATE transaction
	SET "reconciled" = FALSE, "claimedByMatchId" = NULL
	WHERE "tenantId" = $1 AND "id" = $2 AND "claimedByMatchId" = $3`
)

func buildInsertTransactionBatch(txs []*models.Transaction) (string, []interface{}, error) {
	builder := sq.
		Insert("transaction").
		Columns(`"transactionId"`, `"tenantId"`, `"source"`, `"vendorKey"`, `"amountMinor"`, `"currency"`, `"occurredAt"`).
		Suffix(`RETURNING "id", "createdAt"`).
		PlaceholderFormat(sq.Dollar)

	for _, tx := range txs {
		builder = builder.Values(
			tx.TransactionID,
			tx.TenantID,
			tx.Source,
			tx.VendorKey,
			tx.AmountMinor,
			tx.Currency,
			tx.OccurredAt,
		)
	}

	return builder.ToSql()
}

func buildListTransactionsQuery(tenantID string, opts models.TransactionFilterOptions) (string, []interface{}, error) {
	builder := sq.
		Select(`"id"`, `"transactionId"`, `"tenantId"`, `"source"`, `"vendorKey"`, `"amountMinor"`, `"currency"`, `"occurredAt"`, `"reconciled"`, `"claimedByMatchId"`, `"createdAt"`).
		From("transaction").
		Where(sq.Eq{`"tenantId"`: tenantID}).
		OrderBy(`"occurredAt" DESC`, `"id" ASC`).
		PlaceholderFormat(sq.Dollar)

	if opts.Reconciled != nil {
		builder = builder.Where(sq.Eq{`"reconciled"`: *opts.Reconciled})
	}
	if opts.Currency != nil {
		builder = builder.Where(sq.Eq{`"currency"`: *opts.Currency})
	}
	if opts.From != nil {
		builder = builder.Where(sq.GtOrEq{`"occurredAt"`: *opts.From})
	}
	if opts.To != nil {
		builder = builder.Where(sq.LtOrEq{`"occurredAt"`: *opts.To})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}

// CandidateWindow bounds the transactions eligible to match one staging
// record.
type CandidateWindow struct {
	Currency       string
	AmountMinorLow int64
	AmountMinorHi  int64
	OccurredFrom   time.Time
	OccurredTo     time.Time
}
