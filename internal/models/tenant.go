package models

import (
	"time"
)

// ReconOverrides are per-tenant tuning knobs for the reconciliation engine.
// Nil fields fall back to the configured defaults.
type ReconOverrides struct {
	AutoAcceptThreshold  *float64 `json:"autoAcceptThreshold,omitempty"`
	AutoAcceptMargin     *float64 `json:"autoAcceptMargin,omitempty"`
	MinScoreThreshold    *float64 `json:"minScoreThreshold,omitempty"`
	DateWindowDays       *int     `json:"dateWindowDays,omitempty"`
	AmountToleranceMinor *int64   `json:"amountToleranceMinor,omitempty"`
}

type Tenant struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	IsActive         bool            `json:"isActive"`
	BooksClosedUntil *time.Time      `json:"booksClosedUntil,omitempty"`
	PostingHalted    bool            `json:"postingHalted"`
	LastEntryNo      uint64          `json:"lastEntryNo"`
	ReconOverrides   *ReconOverrides `json:"reconOverrides,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ReconSettings is the fully resolved tuning set a batch run operates with.
type ReconSettings struct {
	AutoAcceptThreshold  float64
	AutoAcceptMargin     float64
	MinScoreThreshold    float64
	DateWindowDays       int
	AmountToleranceMinor int64
	TopCandidates        int
}

// Resolve merges tenant overrides on top of the defaults.
func (s ReconSettings) Resolve(o *ReconOverrides) ReconSettings {
	if o == nil {
		return s
	}
	out := s
	if o.AutoAcceptThreshold != nil {
		out.AutoAcceptThreshold = *o.AutoAcceptThreshold
	}
	if o.AutoAcceptMargin != nil {
		out.AutoAcceptMargin = *o.AutoAcceptMargin
	}
	if o.MinScoreThreshold != nil {
		out.MinScoreThreshold = *o.MinScoreThreshold
	}
	if o.DateWindowDays != nil {
		out.DateWindowDays = *o.DateWindowDays
	}
	if o.AmountToleranceMinor != nil {
		out.AmountToleranceMinor = *o.AmountToleranceMinor
	}
	return out
}

// Actor identifies who performed a state-changing operation. Authorization
// happens upstream; the core only records the resolved identity.
type Actor struct {
	TenantID string
	ActorID  string
}
