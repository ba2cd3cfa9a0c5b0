package models

import (
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common"
)

// JournalLine carries exactly one nonzero side. Lines are owned by their
// entry and are never addressed independently.
type JournalLine struct {
	ID          uint64 `json:"id"`
	EntryID     uint64 `json:"entryId"`
	AccountID   uint64 `json:"accountId"`
	DebitMinor  int64  `json:"debitMinor"`
	CreditMinor int64  `json:"creditMinor"`
	Position    int    `json:"position"`
}

// JournalEntry is immutable once committed. Corrections append a reversing
// entry whose SourceRef points back here.
type JournalEntry struct {
	ID        uint64        `json:"id"`
	EntryID   string        `json:"entryId"`
	TenantID  string        `json:"tenantId"`
	EntryNo   uint64        `json:"entryNo"`
	Date      time.Time     `json:"date"`
	Memo      string        `json:"memo"`
	Currency  string        `json:"currency"`
	SourceRef string        `json:"sourceRef,omitempty"`
	Lines     []JournalLine `json:"lines"`
	CreatedAt time.Time     `json:"createdAt"`
}

type DraftLine struct {
	AccountCode string `json:"accountCode" validate:"required,accountCode"`
	DebitMinor  int64  `json:"debitMinor" validate:"gte=0"`
	CreditMinor int64  `json:"creditMinor" validate:"gte=0"`
}

type EntryDraft struct {
	Date      string      `json:"date" validate:"required,date"`
	Memo      string      `json:"memo" validate:"required,max=255"`
	Currency  string      `json:"currency" validate:"required,currencyCode"`
	SourceRef string      `json:"sourceRef,omitempty" validate:"omitempty,max=128"`
	Lines     []DraftLine `json:"lines" validate:"required,min=2,dive"`
}

// CheckBalanced enforces the line-shape and balance rules that do not need
// storage access: at least two lines, exactly one positive side per line,
// and total debits equal to total credits in minor units.
func (d EntryDraft) CheckBalanced() error {
	if len(d.Lines) < 2 {
		return common.ErrEmptyEntry
	}

	var debits, credits int64
	for _, l := range d.Lines {
		debitSet := l.DebitMinor > 0
		creditSet := l.CreditMinor > 0
		if debitSet == creditSet {
			return common.ErrBothSidesSet
		}
		if l.DebitMinor < 0 || l.CreditMinor < 0 {
			return common.ErrInvalidAmount
		}
		debits += l.DebitMinor
		credits += l.CreditMinor
	}

	if debits != credits {
		return common.ErrUnbalancedEntry
	}
	return nil
}

// TotalMinor returns the entry magnitude, the shared debit/credit total.
func (d EntryDraft) TotalMinor() int64 {
	var debits int64
	for _, l := range d.Lines {
		debits += l.DebitMinor
	}
	return debits
}

// ReversalDraft builds the correcting entry for a committed one: every
// line's sides swapped, same accounts, same magnitudes.
func ReversalDraft(original JournalEntry, codeByAccountID map[uint64]string, memo string) EntryDraft {
	draft := EntryDraft{
		Date:      original.Date.Format("2006-01-02"),
		Memo:      memo,
		Currency:  original.Currency,
		SourceRef: original.EntryID,
	}
	for _, l := range original.Lines {
		draft.Lines = append(draft.Lines, DraftLine{
			AccountCode: codeByAccountID[l.AccountID],
			DebitMinor:  l.CreditMinor,
			CreditMinor: l.DebitMinor,
		})
	}
	return draft
}

type JournalFilterOptions struct {
	FromEntryNo *uint64
	From        *time.Time
	To          *time.Time
	SourceRef   *string
	Limit       int
	Offset      int
}
