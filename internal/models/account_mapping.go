package models

import (
	"time"
)

// AccountMapping ties an ingestion source (and optional category) to the
// debit/credit account pair used when posting from a reconciliation match.
// Posting refuses drafts for sources with no mapping rather than guessing.
type AccountMapping struct {
	ID                uint64    `json:"id"`
	TenantID          string    `json:"tenantId"`
	Source            string    `json:"source"`
	Category          string    `json:"category,omitempty"`
	DebitAccountCode  string    `json:"debitAccountCode"`
	CreditAccountCode string    `json:"creditAccountCode"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type UpsertAccountMappingRequest struct {
	Source            string `json:"source" validate:"required,max=64"`
	Category          string `json:"category" validate:"omitempty,max=64"`
	DebitAccountCode  string `json:"debitAccountCode" validate:"required,accountCode"`
	CreditAccountCode string `json:"creditAccountCode" validate:"required,accountCode"`
}
