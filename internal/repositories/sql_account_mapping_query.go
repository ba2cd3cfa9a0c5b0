package repositories

var (
	queryUpsertAccountMapping = `
	INSERT INTO account_mapping ("tenantId", "source", "category", "debitAccountCode", "creditAccountCode")
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT ("tenantId", "source", "category")
	DO UPDATE SET
		"debitAccountCode" = EXCLUDED."debitAccountCode",
		"creditAccountCode" = EXCLUDED."creditAccountCode",
		"updatedAt" = now()
	RETURNING "id", "createdAt", "updatedAt"`

	// Category-specific mappings win over the source-wide fallback
	// (category = '').
	queryResolveAccountMapping = `
	SELECT
		"id",
		"tenantId",
		"source",
		"category",
		"debitAccountCode",
		"creditAccountCode",
		"createdAt",
		"updatedAt"
	FROM account_mapping
	WHERE "tenantId" = $1 AND "source" = $2 AND "category" IN ($3, '')
	ORDER BY "category" DESC
	LIMIT 1`

	queryListAccountMappings = `
	SELECT
		"id",
		"tenantId",
		"source",
		"category",
		"debitAccountCode",
		"creditAccountCode",
		"createdAt",
		"updatedAt"
	FROM account_mapping
	WHERE "tenantId" = $1
	ORDER BY "source" ASC, "category" ASC`
)
