package recon

import (
	"context"
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common/flag"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type reconHandler struct {
	reconSrv services.ReconService
}

func Routes(rs services.ReconService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := reconHandler{
		reconSrv: rs,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ReconcileBatch": handler.ReconcileBatch,
	}
}

func (rh *reconHandler) ReconcileBatch(ctx context.Context, _ time.Time, fl flag.Job) error {
	actor := models.Actor{TenantID: fl.TenantID, ActorID: fl.ActorID}
	if actor.ActorID == "" {
		actor.ActorID = "worker"
	}

	out, err := rh.reconSrv.ReconcileBatch(ctx, actor)
	if err != nil {
		return err
	}

	log.Info(ctx, "ReconcileBatch",
		log.Int("processed", out.Processed),
		log.Int("matched", out.Matched),
		log.Int("ambiguous", out.Ambiguous),
		log.Int("unmatched", out.Unmatched),
	)
	return nil
}
