package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
)

var postingActor = models.Actor{TenantID: "tn-01", ActorID: "jane.bookkeeper"}

func chartAccounts() map[string]models.Account {
	return map[string]models.Account{
		"1000": {ID: 1, TenantID: "tn-01", Code: "1000", Name: "Cash and Bank", Type: models.AccountTypeAsset, NormalBalance: models.NormalBalanceDebit, IsActive: true},
		"5200": {ID: 5, TenantID: "tn-01", Code: "5200", Name: "Fleet Expenses", Type: models.AccountTypeExpense, NormalBalance: models.NormalBalanceDebit, IsActive: true},
	}
}

func fuelDraft() models.EntryDraft {
	return models.EntryDraft{
		Date:     "2026-03-14",
		Memo:     "Fuel purchase",
		Currency: "KES",
		Lines: []models.DraftLine{
			{AccountCode: "5200", DebitMinor: 450000},
			{AccountCode: "1000", CreditMinor: 450000},
		},
	}
}

func TestService_Post(t *testing.T) {
	t.Run("commits entry, balances and audit together", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.expectAtomic()

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", []string{"5200", "1000"}).
			Return(chartAccounts(), nil)

		h.mockTenantRepository.EXPECT().NextEntryNo(gomock.Any(), "tn-01").Return(uint64(13), nil)

		var stored *models.JournalEntry
		h.mockJournalRepository.EXPECT().
			StoreEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, en *models.JournalEntry) error {
				en.ID = 100
				stored = en
				return nil
			})

		// Debit on the debit-normal expense grows it, credit on the
		// debit-normal asset shrinks it.
		h.mockAccRepository.EXPECT().AdjustBalance(gomock.Any(), "tn-01", uint64(5), int64(450000)).Return(nil)
		h.mockAccRepository.EXPECT().AdjustBalance(gomock.Any(), "tn-01", uint64(1), int64(-450000)).Return(nil)
		h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := h.srv.Posting.Post(context.Background(), postingActor, fuelDraft())
		require.NoError(t, err)
		assert.Equal(t, uint64(13), entry.EntryNo)
		assert.Len(t, entry.Lines, 2)
		require.NotNil(t, stored)
		assert.Equal(t, "Fuel purchase", stored.Memo)
	})

	t.Run("unbalanced draft rejected with no writes", func(t *testing.T) {
		h := serviceTestHelper(t)

		draft := fuelDraft()
		draft.Lines[1].CreditMinor = 400000

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", gomock.Any()).
			Return(chartAccounts(), nil)

		_, err := h.srv.Posting.Post(context.Background(), postingActor, draft)
		assert.ErrorIs(t, err, common.ErrUnbalancedEntry)
	})

	t.Run("line with both sides set rejected", func(t *testing.T) {
		h := serviceTestHelper(t)

		draft := fuelDraft()
		draft.Lines[0].CreditMinor = 450000

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", gomock.Any()).
			Return(chartAccounts(), nil)

		_, err := h.srv.Posting.Post(context.Background(), postingActor, draft)
		assert.ErrorIs(t, err, common.ErrBothSidesSet)
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		h := serviceTestHelper(t)

		accounts := chartAccounts()
		acc := accounts["1000"]
		acc.IsActive = false
		accounts["1000"] = acc

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", gomock.Any()).
			Return(accounts, nil)

		_, err := h.srv.Posting.Post(context.Background(), postingActor, fuelDraft())
		assert.ErrorIs(t, err, common.ErrAccountInactive)
	})

	t.Run("entry before books-closed cutoff rejected", func(t *testing.T) {
		h := serviceTestHelper(t)

		cutoff := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		tn := activeTenant()
		tn.BooksClosedUntil = &cutoff

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(tn, nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", gomock.Any()).
			Return(chartAccounts(), nil)

		_, err := h.srv.Posting.Post(context.Background(), postingActor, fuelDraft())
		assert.ErrorIs(t, err, common.ErrBooksClosed)
	})

	t.Run("halted tenant refuses posting", func(t *testing.T) {
		h := serviceTestHelper(t)

		tn := activeTenant()
		tn.PostingHalted = true
		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(tn, nil)

		_, err := h.srv.Posting.Post(context.Background(), postingActor, fuelDraft())
		assert.ErrorIs(t, err, common.ErrPostingHalted)
	})
}

func TestService_Reverse(t *testing.T) {
	original := &models.JournalEntry{
		ID:       100,
		EntryID:  "JRN-1",
		TenantID: "tn-01",
		EntryNo:  13,
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Memo:     "Fuel purchase",
		Currency: "KES",
		Lines: []models.JournalLine{
			{ID: 201, EntryID: 100, AccountID: 5, DebitMinor: 450000, Position: 0},
			{ID: 202, EntryID: 100, AccountID: 1, CreditMinor: 450000, Position: 1},
		},
	}

	t.Run("appends swapped-side entry", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.expectAtomic()

		h.mockJournalRepository.EXPECT().GetByEntryID(gomock.Any(), "tn-01", "JRN-1").Return(original, nil)
		h.mockJournalRepository.EXPECT().ExistsReversal(gomock.Any(), "tn-01", "JRN-1").Return(false, nil)

		accounts := chartAccounts()
		h.mockAccRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(5)).Return(ptr(accounts["5200"]), nil)
		h.mockAccRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(1)).Return(ptr(accounts["1000"]), nil)

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", []string{"5200", "1000"}).
			Return(accounts, nil)

		h.mockTenantRepository.EXPECT().NextEntryNo(gomock.Any(), "tn-01").Return(uint64(14), nil)

		var stored *models.JournalEntry
		h.mockJournalRepository.EXPECT().
			StoreEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, en *models.JournalEntry) error {
				stored = en
				return nil
			})

		// Sides swap, so the original balance movements are undone.
		h.mockAccRepository.EXPECT().AdjustBalance(gomock.Any(), "tn-01", uint64(5), int64(-450000)).Return(nil)
		h.mockAccRepository.EXPECT().AdjustBalance(gomock.Any(), "tn-01", uint64(1), int64(450000)).Return(nil)
		h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		entry, err := h.srv.Posting.Reverse(context.Background(), postingActor, "JRN-1", "")
		require.NoError(t, err)
		assert.Equal(t, uint64(14), entry.EntryNo)

		require.NotNil(t, stored)
		assert.Equal(t, "JRN-1", stored.SourceRef)
		assert.Equal(t, int64(450000), stored.Lines[0].CreditMinor)
		assert.Equal(t, int64(450000), stored.Lines[1].DebitMinor)
	})

	t.Run("second reversal refused", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockJournalRepository.EXPECT().GetByEntryID(gomock.Any(), "tn-01", "JRN-1").Return(original, nil)
		h.mockJournalRepository.EXPECT().ExistsReversal(gomock.Any(), "tn-01", "JRN-1").Return(true, nil)

		_, err := h.srv.Posting.Reverse(context.Background(), postingActor, "JRN-1", "")
		assert.ErrorIs(t, err, common.ErrEntryAlreadyReversed)
	})
}

func TestService_PostFromMatch(t *testing.T) {
	txID := uint64(7)
	match := &models.ReconciliationMatch{
		MatchID:       "MCH-1",
		TenantID:      "tn-01",
		StagingID:     11,
		TransactionID: &txID,
		Status:        models.StagingStatusMatched,
		Decision:      models.MatchDecisionAuto,
	}

	t.Run("category narrows the mapping lookup", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.expectAtomic()

		rec := pendingRecord(11, 450000, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
		rec.Status = models.StagingStatusMatched
		rec.Category = "fuel"

		h.mockMatchRepository.EXPECT().GetByMatchID(gomock.Any(), "tn-01", "MCH-1").Return(match, nil)
		h.mockStagingRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(11)).Return(&rec, nil)
		h.mockMappingRepository.EXPECT().
			Resolve(gomock.Any(), "tn-01", "mpesa", "fuel").
			Return(&models.AccountMapping{
				TenantID:          "tn-01",
				Source:            "mpesa",
				Category:          "fuel",
				DebitAccountCode:  "5200",
				CreditAccountCode: "1000",
			}, nil)

		h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
		h.mockAccRepository.EXPECT().
			GetByCodes(gomock.Any(), "tn-01", []string{"5200", "1000"}).
			Return(chartAccounts(), nil)

		h.mockTenantRepository.EXPECT().NextEntryNo(gomock.Any(), "tn-01").Return(uint64(13), nil)

		var stored *models.JournalEntry
		h.mockJournalRepository.EXPECT().
			StoreEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, en *models.JournalEntry) error {
				en.ID = 100
				stored = en
				return nil
			})

		h.mockAccRepository.EXPECT().AdjustBalance(gomock.Any(), "tn-01", uint64(5), int64(450000)).Return(nil)
		h.mockAccRepository.EXPECT().AdjustBalance(gomock.Any(), "tn-01", uint64(1), int64(-450000)).Return(nil)
		h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := h.srv.Posting.PostFromMatch(context.Background(), postingActor, "MCH-1")
		require.NoError(t, err)
		assert.Equal(t, "MCH-1", entry.SourceRef)
		require.NotNil(t, stored)
		assert.Len(t, stored.Lines, 2)
	})

	t.Run("no mapping refuses with no target account", func(t *testing.T) {
		h := serviceTestHelper(t)

		rec := pendingRecord(11, 450000, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
		rec.Status = models.StagingStatusMatched

		h.mockMatchRepository.EXPECT().GetByMatchID(gomock.Any(), "tn-01", "MCH-1").Return(match, nil)
		h.mockStagingRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(11)).Return(&rec, nil)
		h.mockMappingRepository.EXPECT().
			Resolve(gomock.Any(), "tn-01", "mpesa", "").
			Return(nil, common.ErrDataNotFound)

		_, err := h.srv.Posting.PostFromMatch(context.Background(), postingActor, "MCH-1")
		assert.ErrorIs(t, err, common.ErrNoTargetAccount)
	})

	t.Run("superseded match refused", func(t *testing.T) {
		h := serviceTestHelper(t)

		superseded := *match
		superseded.Superseded = true
		h.mockMatchRepository.EXPECT().GetByMatchID(gomock.Any(), "tn-01", "MCH-1").Return(&superseded, nil)

		_, err := h.srv.Posting.PostFromMatch(context.Background(), postingActor, "MCH-1")
		assert.ErrorIs(t, err, common.ErrMatchSuperseded)
	})
}

func TestService_CheckTrialBalance(t *testing.T) {
	t.Run("zero signed sum passes", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockAccRepository.EXPECT().ListBalances(gomock.Any(), "tn-01").Return([]models.AccountBalance{
			{AccountCode: "1000", NormalSide: models.NormalBalanceDebit, BalanceMinor: 450000},
			{AccountCode: "4000", NormalSide: models.NormalBalanceCredit, BalanceMinor: 450000},
		}, nil)

		err := h.srv.Posting.CheckTrialBalance(context.Background(), postingActor)
		assert.NoError(t, err)
	})

	t.Run("nonzero sum halts posting", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.expectAtomic()

		h.mockAccRepository.EXPECT().ListBalances(gomock.Any(), "tn-01").Return([]models.AccountBalance{
			{AccountCode: "1000", NormalSide: models.NormalBalanceDebit, BalanceMinor: 450000},
			{AccountCode: "4000", NormalSide: models.NormalBalanceCredit, BalanceMinor: 440000},
		}, nil)
		h.mockTenantRepository.EXPECT().HaltPosting(gomock.Any(), "tn-01").Return(nil)
		h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := h.srv.Posting.CheckTrialBalance(context.Background(), postingActor)
		assert.ErrorIs(t, err, common.ErrTrialBalanceNonZero)
	})
}

func ptr[T any](v T) *T {
	return &v
}
