package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pesaledger/go-ledger-core/internal/models"
)

var (
	matchColumns = `
		"id",
		"matchId",
		"tenantId",
		"stagingId",
		"transactionId",
		"confidence",
		"decision",
		"status",
		"candidates",
		"superseded",
		"createdAt"`

	queryInsertMatch = `
	INSERT INTO reconciliation_match
		("matchId", "tenantId", "stagingId", "transactionId", "confidence", "decision", "status", "candidates")
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING "id", "createdAt"`

	queryGetActiveMatchByStagingID = `
	SELECT ` + matchColumns + `
	FROM reconciliation_match
	WHERE "tenantId" = $1 AND "stagingId" = $2 AND "superseded" = FALSE
	ORDER BY "id" DESC
	LIMIT 1`

	queryGetMatchByMatchID = `
	SELECT ` + matchColumns + `
	FROM reconciliation_match
	WHERE "tenantId" = $1 AND "matchId" = $2`

	// Matches are immutable apart from this flag; a superseded match stays
	// on record for the audit trail.
	querySupersedeMatch = `
	UPDATE reconciliation_match
	SET "superseded" = TRUE
	WHERE "tenantId" = $1 AND "matchId" = $2 AND "superseded" = FALSE`
)

func buildListMatchesQuery(tenantID string, opts models.MatchFilterOptions) (string, []interface{}, error) {
	builder := sq.
		Select(`"id"`, `"matchId"`, `"tenantId"`, `"stagingId"`, `"transactionId"`, `"confidence"`, `"decision"`, `"status"`, `"candidates"`, `"superseded"`, `"createdAt"`).
		From("reconciliation_match").
		Where(sq.Eq{`"tenantId"`: tenantID}).
		OrderBy(`"id" DESC`).
		PlaceholderFormat(sq.Dollar)

	if opts.StagingID != nil {
		builder = builder.Where(sq.Eq{`"stagingId"`: *opts.StagingID})
	}
	if opts.Decision != nil {
		builder = builder.Where(sq.Eq{`"decision"`: *opts.Decision})
	}
	if opts.Superseded != nil {
		builder = builder.Where(sq.Eq{`"superseded"`: *opts.Superseded})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}
