package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pesaledger/go-ledger-core/internal/models"
)

var (
	journalEntryColumns = `
		"id",
		"entryId",
		"tenantId",
		"entryNo",
		"date",
		"memo",
		"currency",
		"sourceRef",
		"createdAt"`

	queryInsertJournalEntry = `
	INSERT INTO journal_entry ("entryId", "tenantId", "entryNo", "date", "memo", "currency", "sourceRef")
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING "id", "createdAt"`

	queryGetJournalEntryByEntryID = `
	SELECT ` + journalEntryColumns + `
	FROM journal_entry
	WHERE "tenantId" = $1 AND "entryId" = $2`

	queryGetJournalLinesByEntryID = `
	SELECT "id", "entryId", "accountId", "debitMinor", "creditMinor", "position"
	FROM journal_line
	WHERE "tenantId" = $1 AND "entryId" = $2
	ORDER BY "position" ASC`

	queryExistsReversalForEntry = `
	SELECT EXISTS (
		SELECT 1
		FROM journal_entry
		WHERE "tenantId" = $1 AND "sourceRef" = $2
	)`
)

func buildInsertJournalLines(tenantID string, entryRowID uint64, lines []models.JournalLine) (string, []interface{}, error) {
	builder := sq.
		Insert("journal_line").
		Columns(`"tenantId"`, `"entryId"`, `"accountId"`, `"debitMinor"`, `"creditMinor"`, `"position"`).
		Suffix(`RETURNING "id"`).
		PlaceholderFormat(sq.Dollar)

	for _, l := range lines {
		builder = builder.Values(
			tenantID,
			entryRowID,
			l.AccountID,
			l.DebitMinor,
			l.CreditMinor,
			l.Position,
		)
	}

	return builder.ToSql()
}

func buildListJournalEntriesQuery(tenantID string, opts models.JournalFilterOptions) (string, []interface{}, error) {
	builder := sq.
		Select(`"id"`, `"entryId"`, `"tenantId"`, `"entryNo"`, `"date"`, `"memo"`, `"currency"`, `"sourceRef"`, `"createdAt"`).
		From("journal_entry").
		Where(sq.Eq{`"tenantId"`: tenantID}).
		OrderBy(`"entryNo" ASC`).
		PlaceholderFormat(sq.Dollar)

	if opts.FromEntryNo != nil {
		builder = builder.Where(sq.GtOrEq{`"entryNo"`: *opts.FromEntryNo})
	}
	if opts.From != nil {
		builder = builder.Where(sq.GtOrEq{`"date"`: *opts.From})
	}
	if opts.To != nil {
		builder = builder.Where(sq.LtOrEq{`"date"`: *opts.To})
	}
	if opts.SourceRef != nil {
		builder = builder.Where(sq.Eq{`"sourceRef"`: *opts.SourceRef})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}
