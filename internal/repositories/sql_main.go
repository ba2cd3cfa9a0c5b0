package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	tnr *tenantRepository
	ar  *accountRepository
	amr *accountMappingRepository
	sr  *stagingRepository
	tr  *transactionRepository
	mr  *matchRepository
	jr  *journalRepository
	alr *auditLogRepository
}

func NewSQLRepository(dbWrite, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.tnr = (*tenantRepository)(&rtx.common)
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.amr = (*accountMappingRepository)(&rtx.common)
	rtx.sr = (*stagingRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.mr = (*matchRepository)(&rtx.common)
	rtx.jr = (*journalRepository)(&rtx.common)
	rtx.alr = (*auditLogRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	// Atomic runs steps inside one database transaction. Every repository
	// call made with the ctx it passes in joins that transaction, so a
	// mutation and its audit append commit together or not at all.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error

	GetTenantRepository() TenantRepository
	GetAccountRepository() AccountRepository
	GetAccountMappingRepository() AccountMappingRepository
	GetStagingRepository() StagingRepository
	GetTransactionRepository() TransactionRepository
	GetMatchRepository() MatchRepository
	GetJournalRepository() JournalRepository
	GetAuditLogRepository() AuditLogRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}
			log.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = withTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetTenantRepository() TenantRepository {
	return r.tnr
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetAccountMappingRepository() AccountMappingRepository {
	return r.amr
}

func (r *Repository) GetStagingRepository() StagingRepository {
	return r.sr
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetMatchRepository() MatchRepository {
	return r.mr
}

func (r *Repository) GetJournalRepository() JournalRepository {
	return r.jr
}

func (r *Repository) GetAuditLogRepository() AuditLogRepository {
	return r.alr
}
