package repositories

var (
	queryGetTenant = `
	SELECT
		"id",
		"name",
		"isActive",
		"booksClosedUntil",
		"postingHalted",
		"lastEntryNo",
		"reconOverrides",
		"createdAt",
		"updatedAt"
	FROM tenant
	WHERE "id" = $1`

	queryInsertTenant = `
	INSERT INTO tenant ("id", "name", "isActive", "postingHalted", "lastEntryNo")
	VALUES ($1, $2, TRUE, FALSE, 0)
	RETURNING "createdAt", "updatedAt"`

	// The row update serializes entry numbering per tenant: concurrent
	// commits against one tenant queue on this row while different
	// tenants proceed independently.
	queryNextEntryNo = `
	UPDATE tenant
	SET "lastEntryNo" = "lastEntryNo" + 1, "updatedAt" = now()
	WHERE "id" = $1 AND "isActive" = TRUE
	RETURNING "lastEntryNo"`

	queryHaltPosting = `
	UPDATE tenant
	SET "postingHalted" = TRUE, "updatedAt" = now()
	WHERE "id" = $1`

	querySetBooksClosedUntil = `
	UPDATE tenant
	SET "booksClosedUntil" = $2, "updatedAt" = now()
	WHERE "id" = $1`

	queryUpdateReconOverrides = `
	UPDATE tenant
	SET "reconOverrides" = $2, "updatedAt" = now()
	WHERE "id" = $1`
)
