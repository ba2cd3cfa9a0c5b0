package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type MatchDecision string

const (
	MatchDecisionAuto     MatchDecision = "AUTO"
	MatchDecisionManual   MatchDecision = "MANUAL"
	MatchDecisionRejected MatchDecision = "REJECTED"
)

// MatchCandidate is one scored transaction kept for human review on an
// ambiguous disposition.
type MatchCandidate struct {
	TransactionID uint64  `json:"transactionId"`
	Score         float64 `json:"score"`
	Similarity    float64 `json:"similarity"`
	RecencyWeight float64 `json:"recencyWeight"`
}

type MatchCandidates []MatchCandidate

// Scan implements the sql.Scanner interface
func (m *MatchCandidates) Scan(src interface{}) error {
	var raw []byte
	switch src := src.(type) {
	case string:
		raw = []byte(src)
	case []byte:
		raw = src
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}
	return json.Unmarshal(raw, m)
}

// Value implements the driver.Valuer interface
func (m MatchCandidates) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// ReconciliationMatch is the immutable disposition produced for one staging
// record. Re-runs and revocations supersede matches, they never mutate or
// delete them.
type ReconciliationMatch struct {
	ID            uint64          `json:"id"`
	MatchID       string          `json:"matchId"`
	TenantID      string          `json:"tenantId"`
	StagingID     uint64          `json:"stagingId"`
	TransactionID *uint64         `json:"transactionId,omitempty"`
	Confidence    float64         `json:"confidence"`
	Decision      MatchDecision   `json:"decision"`
	Status        StagingStatus   `json:"status"`
	Candidates    MatchCandidates `json:"candidates,omitempty"`
	Superseded    bool            `json:"superseded"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type ManualResolveRequest struct {
	StagingID     uint64 `json:"stagingId" validate:"required"`
	TransactionID uint64 `json:"transactionId" validate:"required"`
}

type MatchFilterOptions struct {
	StagingID  *uint64
	Decision   *MatchDecision
	Superseded *bool
	Limit      int
	Offset     int
}

// BatchOutcome summarizes one reconciliation run.
type BatchOutcome struct {
	Processed int `json:"processed"`
	Matched   int `json:"matched"`
	Ambiguous int `json:"ambiguous"`
	Unmatched int `json:"unmatched"`
	Skipped   int `json:"skipped"`
}
