// Package metrics registers the prometheus instruments exposed on /metrics.
// Recording methods are nil-receiver safe so worker code can run without a
// registry wired in.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	matchDecisions *prometheus.CounterVec
	claimConflicts prometheus.Counter
	entriesPosted  *prometheus.CounterVec
	postedAmount   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		matchDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_match_decisions_total",
				Help: "Reconciliation dispositions by resulting status",
			},
			[]string{"status"},
		),
		claimConflicts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_claim_conflicts_total",
				Help: "Transaction claims lost to a concurrent match",
			},
		),
		entriesPosted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_journal_entries_total",
				Help: "Committed journal entries by source",
			},
			[]string{"source"},
		),
		postedAmount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_posted_amount_minor_total",
				Help: "Total posted entry magnitude in minor units, by currency",
			},
			[]string{"currency"},
		),
	}

	reg.MustRegister(m.matchDecisions, m.claimConflicts, m.entriesPosted, m.postedAmount)
	return m
}

func (m *Metrics) RecordMatchDecision(status string) {
	if m == nil {
		return
	}
	m.matchDecisions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordClaimConflict() {
	if m == nil {
		return
	}
	m.claimConflicts.Inc()
}

func (m *Metrics) RecordEntryPosted(source, currency string, totalMinor int64) {
	if m == nil {
		return
	}
	m.entriesPosted.WithLabelValues(source).Inc()
	m.postedAmount.WithLabelValues(currency).Add(float64(totalMinor))
}
