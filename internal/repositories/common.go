package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/pesaledger/go-ledger-core/internal/common"
)

const pqUniqueViolation = "23505"

// mapScanError folds driver-level not-found and uniqueness failures onto
// the domain error kinds so nothing above the repository layer needs to
// know about pq.
func mapScanError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrDataNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return common.ErrConflict
	}
	return err
}

// requireRowAffected turns a zero-row conditional update into the supplied
// conflict error. Conditional updates are how claims and supersedes stay
// atomic without explicit locks.
func requireRowAffected(res sql.Result, conflictErr error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return conflictErr
	}
	return nil
}
