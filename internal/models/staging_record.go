package models

import (
	"time"
)

type StagingStatus string

const (
	StagingStatusPending   StagingStatus = "PENDING"
	StagingStatusMatched   StagingStatus = "MATCHED"
	StagingStatusAmbiguous StagingStatus = "AMBIGUOUS"
	StagingStatusUnmatched StagingStatus = "UNMATCHED"
	StagingStatusRejected  StagingStatus = "REJECTED"
)

// StagingRecord is an externally ingested candidate movement awaiting
// reconciliation. Records are never deleted; dispositions supersede each
// other through status transitions.
type StagingRecord struct {
	ID            uint64        `json:"id"`
	StagingID     string        `json:"stagingId"`
	TenantID      string        `json:"tenantId"`
	Source        string        `json:"source"`
	Category      string        `json:"category,omitempty"`
	RawVendorText string        `json:"rawVendorText"`
	VendorKey     string        `json:"vendorKey,omitempty"`
	AmountMinor   int64         `json:"amountMinor"`
	Currency      string        `json:"currency"`
	OccurredAt    time.Time     `json:"occurredAt"`
	IngestedAt    time.Time     `json:"ingestedAt"`
	Status        StagingStatus `json:"status"`
}

type StagingRecordDraft struct {
	Source        string `json:"source" validate:"required,max=64"`
	Category      string `json:"category" validate:"omitempty,max=64"`
	RawVendorText string `json:"rawVendorText" validate:"required,max=255"`
	AmountMinor   int64  `json:"amountMinor" validate:"required,gt=0"`
	Currency      string `json:"currency" validate:"required,currencyCode"`
	OccurredAt    string `json:"occurredAt" validate:"required,date"`
}

type IngestBatchRequest struct {
	Records []StagingRecordDraft `json:"records" validate:"required,min=1,max=5000,dive"`
}

type StagingFilterOptions struct {
	Status *StagingStatus
	Source *string
	Limit  int
	Offset int
}
