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
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

var reconActor = models.Actor{TenantID: "tn-01", ActorID: "batch-runner"}

func activeTenant() *models.Tenant {
	return &models.Tenant{ID: "tn-01", Name: "Acme Sacco", IsActive: true}
}

func pendingRecord(id uint64, amount int64, occurredAt time.Time) models.StagingRecord {
	return models.StagingRecord{
		ID:            id,
		StagingID:     "STG-1",
		TenantID:      "tn-01",
		Source:        "mpesa",
		RawVendorText: "SAFAR1COM LTD",
		AmountMinor:   amount,
		Currency:      "KES",
		OccurredAt:    occurredAt,
		Status:        models.StagingStatusPending,
	}
}

func candidateTx(id uint64, amount int64, occurredAt time.Time) models.Transaction {
	return models.Transaction{
		ID:          id,
		TenantID:    "tn-01",
		Source:      "bank",
		VendorKey:   "safaricom",
		AmountMinor: amount,
		Currency:    "KES",
		OccurredAt:  occurredAt,
	}
}

func TestService_ReconcileBatch_AutoMatch(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := pendingRecord(11, 450000, day)

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
	h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return([]models.StagingRecord{rec}, nil)

	h.mockNormalizer.EXPECT().Normalize(gomock.Any(), "SAFAR1COM LTD").Return("safaricom", nil)
	h.mockStagingRepository.EXPECT().SetVendorKey(gomock.Any(), "tn-01", uint64(11), "safaricom").Return(nil)

	h.mockTrxRepository.EXPECT().
		ListCandidates(gomock.Any(), "tn-01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, w repositories.CandidateWindow) ([]models.Transaction, error) {
			assert.Equal(t, "KES", w.Currency)
			assert.Equal(t, int64(450000), w.AmountMinorLow)
			assert.Equal(t, int64(450000), w.AmountMinorHi)
			return []models.Transaction{candidateTx(7, 450000, day)}, nil
		})

	// 0.7*0.9 + 0.3*1.0 = 0.93, above threshold with no runner-up.
	h.mockNormalizer.EXPECT().Similarity(gomock.Any(), "safaricom", "safaricom").Return(0.9, nil)

	var stored *models.ReconciliationMatch
	h.mockTrxRepository.EXPECT().Claim(gomock.Any(), "tn-01", uint64(7), gomock.Any()).Return(nil)
	h.mockMatchRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.ReconciliationMatch) error {
			stored = m
			return nil
		})
	h.mockStagingRepository.EXPECT().
		UpdateStatus(gomock.Any(), "tn-01", uint64(11), models.StagingStatusPending, models.StagingStatusMatched).
		Return(nil)
	h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Processed)
	assert.Equal(t, 1, outcome.Matched)

	require.NotNil(t, stored)
	assert.Equal(t, models.MatchDecisionAuto, stored.Decision)
	assert.Equal(t, models.StagingStatusMatched, stored.Status)
	require.NotNil(t, stored.TransactionID)
	assert.Equal(t, uint64(7), *stored.TransactionID)
	assert.InDelta(t, 0.93, stored.Confidence, 1e-9)
}

func TestService_ReconcileBatch_AmbiguousWithinMargin(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := pendingRecord(11, 450000, day)

	txA := candidateTx(7, 450000, day)
	txB := candidateTx(9, 450000, day)
	txB.VendorKey = "safaricom-agency"

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
	h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return([]models.StagingRecord{rec}, nil)
	h.mockNormalizer.EXPECT().Normalize(gomock.Any(), "SAFAR1COM LTD").Return("safaricom", nil)
	h.mockStagingRepository.EXPECT().SetVendorKey(gomock.Any(), "tn-01", uint64(11), "safaricom").Return(nil)
	h.mockTrxRepository.EXPECT().
		ListCandidates(gomock.Any(), "tn-01", gomock.Any()).
		Return([]models.Transaction{txA, txB}, nil)

	// Scores 0.811 and 0.79, margin 0.021 below the 0.05 minimum, so the
	// record is parked Ambiguous with both candidates kept.
	h.mockNormalizer.EXPECT().Similarity(gomock.Any(), "safaricom", "safaricom").Return(0.73, nil)
	h.mockNormalizer.EXPECT().Similarity(gomock.Any(), "safaricom", "safaricom-agency").Return(0.70, nil)

	var stored *models.ReconciliationMatch
	h.mockMatchRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.ReconciliationMatch) error {
			stored = m
			return nil
		})
	h.mockStagingRepository.EXPECT().
		UpdateStatus(gomock.Any(), "tn-01", uint64(11), models.StagingStatusPending, models.StagingStatusAmbiguous).
		Return(nil)
	h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Ambiguous)
	assert.Equal(t, 0, outcome.Matched)

	require.NotNil(t, stored)
	assert.Nil(t, stored.TransactionID)
	assert.Len(t, stored.Candidates, 2)
	assert.Greater(t, stored.Candidates[0].Score, stored.Candidates[1].Score)
}

func TestService_ReconcileBatch_BelowMinimumParksAmbiguous(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := pendingRecord(11, 450000, day)

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
	h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return([]models.StagingRecord{rec}, nil)
	h.mockNormalizer.EXPECT().Normalize(gomock.Any(), "SAFAR1COM LTD").Return("safaricom", nil)
	h.mockStagingRepository.EXPECT().SetVendorKey(gomock.Any(), "tn-01", uint64(11), "safaricom").Return(nil)
	h.mockTrxRepository.EXPECT().
		ListCandidates(gomock.Any(), "tn-01", gomock.Any()).
		Return([]models.Transaction{candidateTx(7, 450000, day)}, nil)

	// 0.7*0.1 + 0.3*1.0 = 0.37, under the 0.50 minimum. The candidate
	// passed the hard filters, so the record parks Ambiguous with the
	// candidate kept for a human; Unmatched means no candidate at all.
	h.mockNormalizer.EXPECT().Similarity(gomock.Any(), "safaricom", "safaricom").Return(0.1, nil)

	var stored *models.ReconciliationMatch
	h.mockMatchRepository.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.ReconciliationMatch) error {
			stored = m
			return nil
		})
	h.mockStagingRepository.EXPECT().
		UpdateStatus(gomock.Any(), "tn-01", uint64(11), models.StagingStatusPending, models.StagingStatusAmbiguous).
		Return(nil)
	h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Ambiguous)
	assert.Equal(t, 0, outcome.Unmatched)

	require.NotNil(t, stored)
	assert.Equal(t, models.StagingStatusAmbiguous, stored.Status)
	assert.Nil(t, stored.TransactionID)
	require.Len(t, stored.Candidates, 1)
	assert.InDelta(t, 0.37, stored.Candidates[0].Score, 1e-9)
}

func TestService_ReconcileBatch_RerunMakesNoNewMatches(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := pendingRecord(11, 450000, day)

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil).Times(2)
	gomock.InOrder(
		h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return([]models.StagingRecord{rec}, nil),
		// After the first run the record is Matched, so the second run
		// sees nothing Pending.
		h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return(nil, nil),
	)

	h.mockNormalizer.EXPECT().Normalize(gomock.Any(), "SAFAR1COM LTD").Return("safaricom", nil)
	h.mockStagingRepository.EXPECT().SetVendorKey(gomock.Any(), "tn-01", uint64(11), "safaricom").Return(nil)
	h.mockTrxRepository.EXPECT().
		ListCandidates(gomock.Any(), "tn-01", gomock.Any()).
		Return([]models.Transaction{candidateTx(7, 450000, day)}, nil)
	h.mockNormalizer.EXPECT().Similarity(gomock.Any(), "safaricom", "safaricom").Return(0.95, nil)

	// Exactly one match row across both runs.
	h.mockTrxRepository.EXPECT().Claim(gomock.Any(), "tn-01", uint64(7), gomock.Any()).Return(nil).Times(1)
	h.mockMatchRepository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockStagingRepository.EXPECT().
		UpdateStatus(gomock.Any(), "tn-01", uint64(11), models.StagingStatusPending, models.StagingStatusMatched).
		Return(nil)
	h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	first, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Matched)

	second, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Zero(t, second.Processed)
	assert.Zero(t, second.Matched)
}

func TestService_ReconcileBatch_ClaimConflictLeavesPending(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectAtomic()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := pendingRecord(11, 450000, day)

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
	h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return([]models.StagingRecord{rec}, nil)
	h.mockNormalizer.EXPECT().Normalize(gomock.Any(), "SAFAR1COM LTD").Return("safaricom", nil)
	h.mockStagingRepository.EXPECT().SetVendorKey(gomock.Any(), "tn-01", uint64(11), "safaricom").Return(nil)
	h.mockTrxRepository.EXPECT().
		ListCandidates(gomock.Any(), "tn-01", gomock.Any()).
		Return([]models.Transaction{candidateTx(7, 450000, day)}, nil)
	h.mockNormalizer.EXPECT().Similarity(gomock.Any(), "safaricom", "safaricom").Return(0.95, nil)

	// A concurrent run claimed the transaction first. The record stays
	// Pending and is counted skipped.
	h.mockTrxRepository.EXPECT().
		Claim(gomock.Any(), "tn-01", uint64(7), gomock.Any()).
		Return(common.ErrTransactionClaimed)

	outcome, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Processed)
	assert.Equal(t, 1, outcome.Skipped)
}

func TestService_ReconcileBatch_NormalizerFailureSkips(t *testing.T) {
	h := serviceTestHelper(t)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rec := pendingRecord(11, 450000, day)

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
	h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return([]models.StagingRecord{rec}, nil)
	h.mockNormalizer.EXPECT().Normalize(gomock.Any(), "SAFAR1COM LTD").Return("", common.ErrNormalizerTimeout)

	outcome, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Processed)
	assert.Equal(t, 1, outcome.Skipped)
}

func TestService_ReconcileBatch_NothingPending(t *testing.T) {
	h := serviceTestHelper(t)

	h.mockTenantRepository.EXPECT().Get(gomock.Any(), "tn-01").Return(activeTenant(), nil)
	h.mockStagingRepository.EXPECT().ListPending(gomock.Any(), "tn-01", 500).Return(nil, nil)

	outcome, err := h.srv.Recon.ReconcileBatch(context.Background(), reconActor)
	require.NoError(t, err)
	assert.Zero(t, outcome.Processed)
}

func TestService_ResolveManual(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("claims and commits manual match", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.expectAtomic()

		rec := pendingRecord(11, 450000, day)
		rec.Status = models.StagingStatusAmbiguous
		tx := candidateTx(7, 450000, day)

		h.mockStagingRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(11)).Return(&rec, nil)
		h.mockTrxRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(7)).Return(&tx, nil)

		h.mockMatchRepository.EXPECT().
			GetActiveByStagingID(gomock.Any(), "tn-01", uint64(11)).
			Return(&models.ReconciliationMatch{MatchID: "MCH-prior"}, nil)
		h.mockMatchRepository.EXPECT().Supersede(gomock.Any(), "tn-01", "MCH-prior").Return(nil)
		h.mockTrxRepository.EXPECT().Claim(gomock.Any(), "tn-01", uint64(7), gomock.Any()).Return(nil)
		h.mockMatchRepository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
		h.mockStagingRepository.EXPECT().
			UpdateStatus(gomock.Any(), "tn-01", uint64(11), models.StagingStatusAmbiguous, models.StagingStatusMatched).
			Return(nil)
		h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		match, err := h.srv.Recon.ResolveManual(context.Background(), reconActor, models.ManualResolveRequest{
			StagingID:     11,
			TransactionID: 7,
		})
		require.NoError(t, err)
		assert.Equal(t, models.MatchDecisionManual, match.Decision)
		assert.Equal(t, 1.0, match.Confidence)
	})

	t.Run("currency mismatch refused", func(t *testing.T) {
		h := serviceTestHelper(t)

		rec := pendingRecord(11, 450000, day)
		tx := candidateTx(7, 450000, day)
		tx.Currency = "UGX"

		h.mockStagingRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(11)).Return(&rec, nil)
		h.mockTrxRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(7)).Return(&tx, nil)

		_, err := h.srv.Recon.ResolveManual(context.Background(), reconActor, models.ManualResolveRequest{
			StagingID:     11,
			TransactionID: 7,
		})
		assert.ErrorIs(t, err, common.ErrCurrencyMismatch)
	})

	t.Run("already claimed transaction refused", func(t *testing.T) {
		h := serviceTestHelper(t)

		rec := pendingRecord(11, 450000, day)
		tx := candidateTx(7, 450000, day)
		tx.Reconciled = true

		h.mockStagingRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(11)).Return(&rec, nil)
		h.mockTrxRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(7)).Return(&tx, nil)

		_, err := h.srv.Recon.ResolveManual(context.Background(), reconActor, models.ManualResolveRequest{
			StagingID:     11,
			TransactionID: 7,
		})
		assert.ErrorIs(t, err, common.ErrTransactionClaimed)
	})
}

func TestService_RevokeMatch(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("supersedes and releases claim", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.expectAtomic()

		txID := uint64(7)
		match := &models.ReconciliationMatch{
			MatchID:       "MCH-1",
			TenantID:      "tn-01",
			StagingID:     11,
			TransactionID: &txID,
			Status:        models.StagingStatusMatched,
		}
		rec := pendingRecord(11, 450000, day)
		rec.Status = models.StagingStatusMatched

		h.mockMatchRepository.EXPECT().GetByMatchID(gomock.Any(), "tn-01", "MCH-1").Return(match, nil)
		h.mockStagingRepository.EXPECT().GetByID(gomock.Any(), "tn-01", uint64(11)).Return(&rec, nil)
		h.mockMatchRepository.EXPECT().Supersede(gomock.Any(), "tn-01", "MCH-1").Return(nil)
		h.mockTrxRepository.EXPECT().Release(gomock.Any(), "tn-01", uint64(7), "MCH-1").Return(nil)
		h.mockStagingRepository.EXPECT().
			UpdateStatus(gomock.Any(), "tn-01", uint64(11), models.StagingStatusMatched, models.StagingStatusPending).
			Return(nil)
		h.mockAuditRepository.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := h.srv.Recon.RevokeMatch(context.Background(), reconActor, "MCH-1")
		assert.NoError(t, err)
	})

	t.Run("already superseded", func(t *testing.T) {
		h := serviceTestHelper(t)

		h.mockMatchRepository.EXPECT().
			GetByMatchID(gomock.Any(), "tn-01", "MCH-1").
			Return(&models.ReconciliationMatch{MatchID: "MCH-1", Superseded: true}, nil)

		err := h.srv.Recon.RevokeMatch(context.Background(), reconActor, "MCH-1")
		assert.ErrorIs(t, err, common.ErrMatchSuperseded)
	})
}
