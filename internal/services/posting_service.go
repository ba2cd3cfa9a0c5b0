package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/common/validation"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

type PostingService interface {
	// Post validates and commits one journal entry, its balance movements
	// and the audit row as a single transaction.
	Post(ctx context.Context, actor models.Actor, draft models.EntryDraft) (*models.JournalEntry, error)
	// PostFromMatch builds the draft for a committed match from the staging
	// source's account mapping, refusing when no mapping exists.
	PostFromMatch(ctx context.Context, actor models.Actor, matchID string) (*models.JournalEntry, error)
	// Reverse appends the correcting entry for a committed one. The
	// original is never touched; a second reversal is refused.
	Reverse(ctx context.Context, actor models.Actor, entryID, memo string) (*models.JournalEntry, error)
	Get(ctx context.Context, tenantID, entryID string) (*models.JournalEntry, error)
	List(ctx context.Context, tenantID string, opts models.JournalFilterOptions) ([]models.JournalEntry, error)
	// CheckTrialBalance verifies the signed sum across all accounts is
	// zero. A nonzero sum halts posting for the tenant and reports an
	// invariant violation.
	CheckTrialBalance(ctx context.Context, actor models.Actor) error
}

type posting service

var _ PostingService = (*posting)(nil)

func (ps *posting) Post(ctx context.Context, actor models.Actor, draft models.EntryDraft) (out *models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	out, err = ps.post(ctx, actor, draft, "manual")
	return out, err
}

func (ps *posting) post(ctx context.Context, actor models.Actor, draft models.EntryDraft, source string) (*models.JournalEntry, error) {
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	tenant, err := ps.srv.activeTenant(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant.PostingHalted {
		return nil, common.ErrPostingHalted
	}

	// Validation order: account ownership and activity first, then line
	// shape, then balance, then the books-closed cutoff.
	accounts, err := ps.resolveAccounts(ctx, actor.TenantID, draft)
	if err != nil {
		return nil, err
	}
	if err = draft.CheckBalanced(); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return nil, err
	}
	if tenant.BooksClosedUntil != nil && date.Before(*tenant.BooksClosedUntil) {
		return nil, common.ErrBooksClosed
	}

	entry := &models.JournalEntry{
		EntryID:   ps.srv.idgenerator.Generate(idPrefixEntry),
		TenantID:  actor.TenantID,
		Date:      date,
		Memo:      draft.Memo,
		Currency:  draft.Currency,
		SourceRef: draft.SourceRef,
	}
	for i, l := range draft.Lines {
		entry.Lines = append(entry.Lines, models.JournalLine{
			AccountID:   accounts[l.AccountCode].ID,
			DebitMinor:  l.DebitMinor,
			CreditMinor: l.CreditMinor,
			Position:    i,
		})
	}

	err = ps.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		no, err := r.GetTenantRepository().NextEntryNo(ctx, actor.TenantID)
		if err != nil {
			return err
		}
		entry.EntryNo = no

		if err := r.GetJournalRepository().StoreEntry(ctx, entry); err != nil {
			return err
		}

		for _, l := range draft.Lines {
			acc := accounts[l.AccountCode]
			delta := acc.SignedDelta(l.DebitMinor, l.CreditMinor)
			if err := r.GetAccountRepository().AdjustBalance(ctx, actor.TenantID, acc.ID, delta); err != nil {
				return err
			}
		}

		return ps.srv.appendAudit(ctx, r, actor, models.AuditActionEntryPosted, "journal_entry", entry.EntryID, nil, entry)
	})
	if err != nil {
		return nil, err
	}

	ps.srv.metrics.RecordEntryPosted(source, entry.Currency, draft.TotalMinor())
	return entry, nil
}

// resolveAccounts loads every referenced account and enforces tenant
// ownership and activity.
func (ps *posting) resolveAccounts(ctx context.Context, tenantID string, draft models.EntryDraft) (map[string]models.Account, error) {
	codes := make([]string, 0, len(draft.Lines))
	seen := make(map[string]bool, len(draft.Lines))
	for _, l := range draft.Lines {
		if seen[l.AccountCode] {
			continue
		}
		seen[l.AccountCode] = true
		codes = append(codes, l.AccountCode)
	}

	accounts, err := ps.srv.sqlRepo.GetAccountRepository().GetByCodes(ctx, tenantID, codes)
	if err != nil {
		return nil, err
	}

	for _, code := range codes {
		acc, ok := accounts[code]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", common.ErrDataNotFound, code)
		}
		if !acc.IsActive {
			return nil, common.ErrAccountInactive
		}
	}
	return accounts, nil
}

func (ps *posting) PostFromMatch(ctx context.Context, actor models.Actor, matchID string) (out *models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	match, err := ps.srv.sqlRepo.GetMatchRepository().GetByMatchID(ctx, actor.TenantID, matchID)
	if err != nil {
		return nil, err
	}
	if match.Superseded {
		return nil, common.ErrMatchSuperseded
	}
	if match.Status != models.StagingStatusMatched || match.TransactionID == nil {
		return nil, common.ErrStagingNotPending
	}

	rec, err := ps.srv.sqlRepo.GetStagingRepository().GetByID(ctx, actor.TenantID, match.StagingID)
	if err != nil {
		return nil, err
	}

	mapping, err := ps.srv.sqlRepo.GetAccountMappingRepository().Resolve(ctx, actor.TenantID, rec.Source, rec.Category)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return nil, common.ErrNoTargetAccount
		}
		return nil, err
	}

	draft := models.EntryDraft{
		Date:      rec.OccurredAt.Format("2006-01-02"),
		Memo:      fmt.Sprintf("Reconciled %s via %s", rec.RawVendorText, rec.Source),
		Currency:  rec.Currency,
		SourceRef: match.MatchID,
		Lines: []models.DraftLine{
			{AccountCode: mapping.DebitAccountCode, DebitMinor: rec.AmountMinor},
			{AccountCode: mapping.CreditAccountCode, CreditMinor: rec.AmountMinor},
		},
	}

	return ps.post(ctx, actor, draft, "reconciliation")
}

func (ps *posting) Reverse(ctx context.Context, actor models.Actor, entryID, memo string) (out *models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	jrnRepo := ps.srv.sqlRepo.GetJournalRepository()

	original, err := jrnRepo.GetByEntryID(ctx, actor.TenantID, entryID)
	if err != nil {
		return nil, err
	}

	reversed, err := jrnRepo.ExistsReversal(ctx, actor.TenantID, entryID)
	if err != nil {
		return nil, err
	}
	if reversed {
		return nil, common.ErrEntryAlreadyReversed
	}

	codeByID, err := ps.accountCodesFor(ctx, actor.TenantID, original.Lines)
	if err != nil {
		return nil, err
	}

	if memo == "" {
		memo = fmt.Sprintf("Reversal of %s", original.EntryID)
	}
	draft := models.ReversalDraft(*original, codeByID, memo)

	entry, err := ps.post(ctx, actor, draft, "reversal")
	if err != nil {
		return nil, err
	}

	// The reversal itself is already audited as a posted entry; this row
	// ties the reversal action to the original.
	err = ps.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		return ps.srv.appendAudit(ctx, r, actor, models.AuditActionEntryReversed, "journal_entry", original.EntryID, original, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (ps *posting) accountCodesFor(ctx context.Context, tenantID string, lines []models.JournalLine) (map[uint64]string, error) {
	out := make(map[uint64]string, len(lines))
	accRepo := ps.srv.sqlRepo.GetAccountRepository()
	for _, l := range lines {
		if _, ok := out[l.AccountID]; ok {
			continue
		}
		acc, err := accRepo.GetByID(ctx, tenantID, l.AccountID)
		if err != nil {
			return nil, err
		}
		out[l.AccountID] = acc.Code
	}
	return out, nil
}

func (ps *posting) Get(ctx context.Context, tenantID, entryID string) (out *models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ps.srv.sqlRepo.GetJournalRepository().GetByEntryID(ctx, tenantID, entryID)
}

func (ps *posting) List(ctx context.Context, tenantID string, opts models.JournalFilterOptions) (out []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ps.srv.sqlRepo.GetJournalRepository().List(ctx, tenantID, opts)
}

func (ps *posting) CheckTrialBalance(ctx context.Context, actor models.Actor) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	balances, err := ps.srv.sqlRepo.GetAccountRepository().ListBalances(ctx, actor.TenantID)
	if err != nil {
		return err
	}

	var signed int64
	for _, b := range balances {
		signed += b.SignedMinor()
	}
	if signed == 0 {
		return nil
	}

	err = ps.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetTenantRepository().HaltPosting(ctx, actor.TenantID); err != nil {
			return err
		}
		return ps.srv.appendAudit(ctx, r, actor, models.AuditActionPostingHalted, "tenant", actor.TenantID, nil, signed)
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: signed sum %d", common.ErrTrialBalanceNonZero, signed)
}
