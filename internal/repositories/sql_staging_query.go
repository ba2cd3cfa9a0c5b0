package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pesaledger/go-ledger-core/internal/models"
)

var (
	stagingColumns = `
		"id",
		"stagingId",
		"tenantId",
		"source",
		"category",
		"rawVendorText",
		"vendorKey",
		"amountMinor",
		"currency",
		"occurredAt",
		"ingestedAt",
		"status"`

	queryGetStagingByID = `
	SELECT ` + stagingColumns + `
	FROM staging_record
	WHERE "tenantId" = $1 AND "id" = $2`

	queryListPendingStaging = `
	SELECT ` + stagingColumns + `
	FROM staging_record
	WHERE "tenantId" = $1 AND "status" = 'PENDING'
	ORDER BY "occurredAt" ASC, "id" ASC
	LIMIT $2`

	// Status only moves through the conditional update so two concurrent
	// runs cannot both disposition one record.
	queryUpdateStagingStatus = `
	UPDATE staging_record
	SET "status" = $3
	WHERE "tenantId" = $1 AND "id" = $2 AND "status" = $4`

	querySetStagingVendorKey = `
	UPDATE staging_record
	SET "vendorKey" = $3
	WHERE "tenantId" = $1 AND "id" = $2`
)

func buildInsertStagingBatch(records []*models.StagingRecord) (string, []interface{}, error) {
	builder := sq.
		Insert("staging_record").
		Columns(`"stagingId"`, `"tenantId"`, `"source"`, `"category"`, `"rawVendorText"`, `"vendorKey"`, `"amountMinor"`, `"currency"`, `"occurredAt"`, `"status"`).
		Suffix(`RETURNING "id", "ingestedAt"`).
		PlaceholderFormat(sq.Dollar)

	for _, r := range records {
		builder = builder.Values(
			r.StagingID,
			r.TenantID,
			r.Source,
			r.Category,
			r.RawVendorText,
			r.VendorKey,
			r.AmountMinor,
			r.Currency,
			r.OccurredAt,
			models.StagingStatusPending,
		)
	}

	return builder.ToSql()
}

func buildListStagingQuery(tenantID string, opts models.StagingFilterOptions) (string, []interface{}, error) {
	builder := sq.
		Select(`"id"`, `"stagingId"`, `"tenantId"`, `"source"`, `"category"`, `"rawVendorText"`, `"vendorKey"`, `"amountMinor"`, `"currency"`, `"occurredAt"`, `"ingestedAt"`, `"status"`).
		From("staging_record").
		Where(sq.Eq{`"tenantId"`: tenantID}).
		OrderBy(`"id" ASC`).
		PlaceholderFormat(sq.Dollar)

	if opts.Status != nil {
		builder = builder.Where(sq.Eq{`"status"`: *opts.Status})
	}
	if opts.Source != nil {
		builder = builder.Where(sq.Eq{`"source"`: *opts.Source})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}
