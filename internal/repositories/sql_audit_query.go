package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pesaledger/go-ledger-core/internal/models"
)

var (
	queryInsertAuditLog = `
	INSERT INTO audit_log ("auditId", "tenantId", "actor", "action", "entityType", "entityId", "beforeHash", "afterHash")
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING "id", "createdAt"`
)

func buildListAuditLogQuery(tenantID string, opts models.AuditFilterOptions) (string, []interface{}, error) {
	builder := sq.
		Select(`"id"`, `"auditId"`, `"tenantId"`, `"actor"`, `"action"`, `"entityType"`, `"entityId"`, `"beforeHash"`, `"afterHash"`, `"createdAt"`).
		From("audit_log").
		Where(sq.Eq{`"tenantId"`: tenantID}).
		OrderBy(`"id" ASC`).
		PlaceholderFormat(sq.Dollar)

	if opts.Action != nil {
		builder = builder.Where(sq.Eq{`"action"`: *opts.Action})
	}
	if opts.EntityType != nil {
		builder = builder.Where(sq.Eq{`"entityType"`: *opts.EntityType})
	}
	if opts.EntityID != nil {
		builder = builder.Where(sq.Eq{`"entityId"`: *opts.EntityID})
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}
