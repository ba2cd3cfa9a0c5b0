// Package job routes worker command invocations to their handlers. Jobs
// are addressed by version and name so a new revision of a job can ship
// alongside the old one.
package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pesaledger/go-ledger-core/internal/common/flag"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
	v1ledger "github.com/pesaledger/go-ledger-core/internal/deliveries/job/v1/ledger"
	v1recon "github.com/pesaledger/go-ledger-core/internal/deliveries/job/v1/recon"
	"github.com/pesaledger/go-ledger-core/internal/services"
)

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: merge(
			v1recon.Routes(srv.Recon),
			v1ledger.Routes(srv.Posting),
		),
	}

	return &Job{jobRoutes}
}

func merge(ms ...map[string]func(ctx context.Context, date time.Time, flag flag.Job) error) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	out := make(map[string]func(ctx context.Context, date time.Time, flag flag.Job) error)
	for _, m := range ms {
		for name, fn := range m {
			out[name] = fn
		}
	}
	return out
}

func (j *Job) Start(ctx context.Context, fl flag.Job) {
	fn, ok := j.Routes[fl.Version][fl.JobName]
	if !ok {
		logOutcome(ctx, fl, errors.New("invalid version or job name"))
		return
	}

	var (
		runningDate time.Time
		err         error
	)
	ctx = log.InjectFields(ctx,
		log.String("correlationId", uuid.New().String()),
		log.String("jobName", fl.JobName),
		log.String("tenantId", fl.TenantID),
	)

	defer func() {
		logOutcome(ctx, fl, err)
	}()

	if fl.Date != "" {
		runningDate, err = time.Parse("2006-01-02", fl.Date)
		if err != nil {
			return
		}
	}
	err = fn(ctx, runningDate, fl)
}

func logOutcome(ctx context.Context, fl flag.Job, err error) {
	if err != nil {
		log.Error(ctx, "[JOB] finished with error",
			log.String("name", fl.JobName), log.String("version", fl.Version), log.Err(err))
		return
	}
	log.Info(ctx, "[JOB] finished",
		log.String("name", fl.JobName), log.String("version", fl.Version))
}
