package models

import (
	"time"
)

// Transaction is an independently recorded movement, usually a bank line,
// available as a matching candidate. Ingestion owns every field except the
// claim pair (Reconciled, ClaimedByMatchID), which only the reconciliation
// engine touches.
type Transaction struct {
	ID               uint64    `json:"id"`
	TransactionID    string    `json:"transactionId"`
	TenantID         string    `json:"tenantId"`
	Source           string    `json:"source"`
	VendorKey        string    `json:"vendorKey"`
	AmountMinor      int64     `json:"amountMinor"`
	Currency         string    `json:"currency"`
	OccurredAt       time.Time `json:"occurredAt"`
	Reconciled       bool      `json:"reconciled"`
	ClaimedByMatchID *string   `json:"claimedByMatchId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type TransactionDraft struct {
	Source      string `json:"source" validate:"required,max=64"`
	VendorKey   string `json:"vendorKey" validate:"required,max=128"`
	AmountMinor int64  `json:"amountMinor" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,currencyCode"`
	OccurredAt  string `json:"occurredAt" validate:"required,date"`
}

type TransactionFilterOptions struct {
	Reconciled *bool
	Currency   *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
