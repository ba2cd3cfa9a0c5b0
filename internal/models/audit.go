package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditActionAccountCreated     AuditAction = "ACCOUNT_CREATED"
	AuditActionAccountUpdated     AuditAction = "ACCOUNT_UPDATED"
	AuditActionAccountDeactivated AuditAction = "ACCOUNT_DEACTIVATED"
	AuditActionMappingUpserted    AuditAction = "MAPPING_UPSERTED"
	AuditActionStagingIngested    AuditAction = "STAGING_INGESTED"
	AuditActionMatchCommitted     AuditAction = "MATCH_COMMITTED"
	AuditActionMatchRevoked       AuditAction = "MATCH_REVOKED"
	AuditActionEntryPosted        AuditAction = "ENTRY_POSTED"
	AuditActionEntryReversed      AuditAction = "ENTRY_REVERSED"
	AuditActionPostingHalted      AuditAction = "POSTING_HALTED"
)

// AuditLogEntry is append-only and totally ordered per tenant. Every
// state-changing operation elsewhere commits one of these in the same
// database transaction as its primary write.
type AuditLogEntry struct {
	ID         uint64      `json:"id"`
	AuditID    string      `json:"auditId"`
	TenantID   string      `json:"tenantId"`
	Actor      string      `json:"actor"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   string      `json:"entityId"`
	BeforeHash string      `json:"beforeHash,omitempty"`
	AfterHash  string      `json:"afterHash,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type AuditFilterOptions struct {
	Action     *AuditAction
	EntityType *string
	EntityID   *string
	Limit      int
	Offset     int
}

// SnapshotHash fingerprints an entity state for the audit trail. JSON
// marshalling of our entity structs is deterministic (fixed field order), so
// equal states always hash equal.
func SnapshotHash(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
