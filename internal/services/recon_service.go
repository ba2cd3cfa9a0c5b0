package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/common/validation"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/monitoring"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

const (
	similarityWeight = 0.7
	recencyWeight    = 0.3

	defaultBatchLimit            = 500
	defaultNormalizerConcurrency = 8
)

type ReconService interface {
	// ReconcileBatch dispositions pending staging records. Each record
	// commits independently; cancelling the context stops the run between
	// records and returns what was processed so far.
	ReconcileBatch(ctx context.Context, actor models.Actor) (models.BatchOutcome, error)
	// ResolveManual is a human override for an Ambiguous or Pending record.
	ResolveManual(ctx context.Context, actor models.Actor, in models.ManualResolveRequest) (*models.ReconciliationMatch, error)
	// RevokeMatch supersedes an active match, releases its claim and puts
	// the staging record back in play.
	RevokeMatch(ctx context.Context, actor models.Actor, matchID string) error
	ListMatches(ctx context.Context, tenantID string, opts models.MatchFilterOptions) ([]models.ReconciliationMatch, error)
}

type recon service

var _ ReconService = (*recon)(nil)

func (rs *recon) ReconcileBatch(ctx context.Context, actor models.Actor) (outcome models.BatchOutcome, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	tenant, err := rs.srv.activeTenant(ctx, actor.TenantID)
	if err != nil {
		return outcome, err
	}
	settings := rs.srv.reconSettings(tenant)

	batchLimit := rs.srv.conf.Recon.BatchLimit
	if batchLimit <= 0 {
		batchLimit = defaultBatchLimit
	}

	records, err := rs.srv.sqlRepo.GetStagingRepository().ListPending(ctx, actor.TenantID, batchLimit)
	if err != nil {
		return outcome, err
	}
	if len(records) == 0 {
		return outcome, nil
	}

	keys, err := rs.prefetchVendorKeys(ctx, actor.TenantID, records)
	if err != nil {
		return outcome, err
	}

	for i := range records {
		select {
		case <-ctx.Done():
			return outcome, ctx.Err()
		default:
		}

		rec := records[i]
		if keys[i] == "" {
			// Normalizer failed for this record, leave it Pending for
			// the next run.
			outcome.Skipped++
			continue
		}
		rec.VendorKey = keys[i]

		status, err := rs.disposition(ctx, actor, &rec, settings)
		if err != nil {
			if errors.Is(err, common.ErrTransactionClaimed) {
				rs.srv.metrics.RecordClaimConflict()
				outcome.Skipped++
				continue
			}
			return outcome, err
		}

		outcome.Processed++
		switch status {
		case models.StagingStatusMatched:
			outcome.Matched++
		case models.StagingStatusAmbiguous:
			outcome.Ambiguous++
		case models.StagingStatusUnmatched:
			outcome.Unmatched++
		}
		rs.srv.metrics.RecordMatchDecision(string(status))
	}

	return outcome, nil
}

// prefetchVendorKeys normalizes raw vendor text concurrently, bounded so a
// slow collaborator cannot swamp itself. A failed record yields an empty key
// and is skipped by the caller; only context cancellation aborts the batch.
func (rs *recon) prefetchVendorKeys(ctx context.Context, tenantID string, records []models.StagingRecord) ([]string, error) {
	keys := make([]string, len(records))

	concurrency := rs.srv.conf.Recon.NormalizerConcurrency
	if concurrency <= 0 {
		concurrency = defaultNormalizerConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range records {
		i := i
		if records[i].VendorKey != "" {
			keys[i] = records[i].VendorKey
			continue
		}
		g.Go(func() error {
			key, err := rs.srv.normalizer.Normalize(gctx, records[i].RawVendorText)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn(gctx, "[RECON.NORMALIZE.FAILED]",
					log.String("stagingId", records[i].StagingID),
					log.Err(err),
				)
				return nil
			}
			keys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range records {
		if keys[i] == "" || records[i].VendorKey == keys[i] {
			continue
		}
		if err := rs.srv.sqlRepo.GetStagingRepository().SetVendorKey(ctx, tenantID, records[i].ID, keys[i]); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func (rs *recon) disposition(ctx context.Context, actor models.Actor, rec *models.StagingRecord, settings models.ReconSettings) (models.StagingStatus, error) {
	candidates, err := rs.scoreCandidates(ctx, actor.TenantID, rec, settings)
	if err != nil {
		return "", err
	}

	status := models.StagingStatusUnmatched
	var claimed *models.Transaction

	if len(candidates) > 0 {
		best := candidates[0]
		clearMargin := len(candidates) == 1 || best.Score-candidates[1].Score >= settings.AutoAcceptMargin

		// Unmatched is reserved for an empty candidate set. Anything that
		// fails the auto-accept test is parked for a human with the top
		// candidates kept, even when the best score is below the minimum.
		if best.Score >= settings.AutoAcceptThreshold && best.Score >= settings.MinScoreThreshold && clearMargin {
			status = models.StagingStatusMatched
			claimed = &models.Transaction{ID: best.TransactionID}
		} else {
			status = models.StagingStatusAmbiguous
			if len(candidates) > settings.TopCandidates {
				candidates = candidates[:settings.TopCandidates]
			}
		}
	}

	match := &models.ReconciliationMatch{
		MatchID:   rs.srv.idgenerator.Generate(idPrefixMatch),
		TenantID:  actor.TenantID,
		StagingID: rec.ID,
		Decision:  models.MatchDecisionAuto,
		Status:    status,
	}
	switch status {
	case models.StagingStatusMatched:
		match.TransactionID = &claimed.ID
		match.Confidence = candidates[0].Score
	case models.StagingStatusAmbiguous:
		match.Candidates = candidates
		match.Confidence = candidates[0].Score
	}

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if claimed != nil {
			if err := r.GetTransactionRepository().Claim(ctx, actor.TenantID, claimed.ID, match.MatchID); err != nil {
				return err
			}
		}
		if err := r.GetMatchRepository().Store(ctx, match); err != nil {
			return err
		}
		if err := r.GetStagingRepository().UpdateStatus(ctx, actor.TenantID, rec.ID, models.StagingStatusPending, status); err != nil {
			return err
		}
		return rs.srv.appendAudit(ctx, r, actor, models.AuditActionMatchCommitted, "reconciliation_match", match.MatchID, rec, match)
	})
	if err != nil {
		return "", err
	}

	rec.Status = status
	return status, nil
}

func (rs *recon) scoreCandidates(ctx context.Context, tenantID string, rec *models.StagingRecord, settings models.ReconSettings) (models.MatchCandidates, error) {
	window := repositories.CandidateWindow{
		Currency:       rec.Currency,
		AmountMinorLow: rec.AmountMinor - settings.AmountToleranceMinor,
		AmountMinorHi:  rec.AmountMinor + settings.AmountToleranceMinor,
		OccurredFrom:   rec.OccurredAt.AddDate(0, 0, -settings.DateWindowDays),
		OccurredTo:     rec.OccurredAt.AddDate(0, 0, settings.DateWindowDays),
	}

	txs, err := rs.srv.sqlRepo.GetTransactionRepository().ListCandidates(ctx, tenantID, window)
	if err != nil {
		return nil, err
	}

	var out models.MatchCandidates
	for _, tx := range txs {
		similarity, err := rs.srv.normalizer.Similarity(ctx, rec.VendorKey, tx.VendorKey)
		if err != nil {
			return nil, err
		}
		recency := recencyFor(rec.OccurredAt, tx.OccurredAt, settings.DateWindowDays)
		out = append(out, models.MatchCandidate{
			TransactionID: tx.ID,
			Score:         similarityWeight*similarity + recencyWeight*recency,
			Similarity:    similarity,
			RecencyWeight: recency,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// recencyFor scales the day gap onto [0,1]: same day scores 1.0, the edge of
// the window approaches the minimum.
func recencyFor(a, b time.Time, windowDays int) float64 {
	gap := a.Sub(b)
	if gap < 0 {
		gap = -gap
	}
	days := gap.Hours() / 24
	return 1 - days/float64(windowDays+1)
}

func (rs *recon) ResolveManual(ctx context.Context, actor models.Actor, in models.ManualResolveRequest) (match *models.ReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	rec, err := rs.srv.sqlRepo.GetStagingRepository().GetByID(ctx, actor.TenantID, in.StagingID)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.StagingStatusPending && rec.Status != models.StagingStatusAmbiguous && rec.Status != models.StagingStatusUnmatched {
		return nil, common.ErrStagingNotPending
	}

	tx, err := rs.srv.sqlRepo.GetTransactionRepository().GetByID(ctx, actor.TenantID, in.TransactionID)
	if err != nil {
		return nil, err
	}
	if tx.Reconciled {
		return nil, common.ErrTransactionClaimed
	}
	if tx.Currency != rec.Currency {
		return nil, common.ErrCurrencyMismatch
	}

	match = &models.ReconciliationMatch{
		MatchID:       rs.srv.idgenerator.Generate(idPrefixMatch),
		TenantID:      actor.TenantID,
		StagingID:     rec.ID,
		TransactionID: &tx.ID,
		Confidence:    1.0,
		Decision:      models.MatchDecisionManual,
		Status:        models.StagingStatusMatched,
	}

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		prior, err := r.GetMatchRepository().GetActiveByStagingID(ctx, actor.TenantID, rec.ID)
		if err != nil && !errors.Is(err, common.ErrDataNotFound) {
			return err
		}
		if prior != nil {
			if err := r.GetMatchRepository().Supersede(ctx, actor.TenantID, prior.MatchID); err != nil {
				return err
			}
		}
		if err := r.GetTransactionRepository().Claim(ctx, actor.TenantID, tx.ID, match.MatchID); err != nil {
			return err
		}
		if err := r.GetMatchRepository().Store(ctx, match); err != nil {
			return err
		}
		if err := r.GetStagingRepository().UpdateStatus(ctx, actor.TenantID, rec.ID, rec.Status, models.StagingStatusMatched); err != nil {
			return err
		}
		return rs.srv.appendAudit(ctx, r, actor, models.AuditActionMatchCommitted, "reconciliation_match", match.MatchID, rec, match)
	})
	if err != nil {
		return nil, err
	}

	rs.srv.metrics.RecordMatchDecision(string(models.StagingStatusMatched))
	return match, nil
}

func (rs *recon) RevokeMatch(ctx context.Context, actor models.Actor, matchID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	match, err := rs.srv.sqlRepo.GetMatchRepository().GetByMatchID(ctx, actor.TenantID, matchID)
	if err != nil {
		return err
	}
	if match.Superseded {
		return common.ErrMatchSuperseded
	}

	rec, err := rs.srv.sqlRepo.GetStagingRepository().GetByID(ctx, actor.TenantID, match.StagingID)
	if err != nil {
		return err
	}

	return rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetMatchRepository().Supersede(ctx, actor.TenantID, match.MatchID); err != nil {
			return err
		}
		if match.TransactionID != nil {
			if err := r.GetTransactionRepository().Release(ctx, actor.TenantID, *match.TransactionID, match.MatchID); err != nil {
				return err
			}
		}
		if err := r.GetStagingRepository().UpdateStatus(ctx, actor.TenantID, rec.ID, rec.Status, models.StagingStatusPending); err != nil {
			return err
		}
		return rs.srv.appendAudit(ctx, r, actor, models.AuditActionMatchRevoked, "reconciliation_match", match.MatchID, match, nil)
	})
}

func (rs *recon) ListMatches(ctx context.Context, tenantID string, opts models.MatchFilterOptions) (out []models.ReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rs.srv.sqlRepo.GetMatchRepository().List(ctx, tenantID, opts)
}
