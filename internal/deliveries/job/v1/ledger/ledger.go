package ledger

import (
	"context"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common/flag"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type ledgerHandler struct {
	postingSrv services.PostingService
}

func Routes(ps services.PostingService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := ledgerHandler{
		postingSrv: ps,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"CheckTrialBalance": handler.CheckTrialBalance,
	}
}

// CheckTrialBalance verifies the tenant's books still sum to zero. A
// non-zero sum halts posting for the tenant, so this is meant to run on
// a schedule rather than ad hoc.
func (lh *ledgerHandler) CheckTrialBalance(ctx context.Context, _ time.Time, fl flag.Job) error {
	actor := models.Actor{TenantID: fl.TenantID, ActorID: fl.ActorID}
	if actor.ActorID == "" {
		actor.ActorID = "worker"
	}

	if err := lh.postingSrv.CheckTrialBalance(ctx, actor); err != nil {
		return err
	}

	log.Info(ctx, "CheckTrialBalance", log.String("tenantId", fl.TenantID), log.Bool("balanced", true))
	return nil
}
