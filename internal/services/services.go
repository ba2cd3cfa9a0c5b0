package services

import (
	"github.com/pesaledger/go-ledger-core/internal/common/idgenerator"
	"github.com/pesaledger/go-ledger-core/internal/common/metrics"
	"github.com/pesaledger/go-ledger-core/internal/common/normalizer"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	normalizer  normalizer.Client
	idgenerator idgenerator.Generator
	metrics     *metrics.Metrics

	common service

	Tenant  *tenant
	Account *account
	Staging *staging
	Recon   *recon
	Posting *posting
	Payroll *payroll
	Audit   *audit
	Report  *report
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	normalizerClient normalizer.Client,
	idgen idgenerator.Generator,
	m *metrics.Metrics,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		normalizer:  normalizerClient,
		idgenerator: idgen,
		metrics:     m,
	}
	srv.common.srv = srv
	srv.Tenant = (*tenant)(&srv.common)
	srv.Account = (*account)(&srv.common)
	srv.Staging = (*staging)(&srv.common)
	srv.Recon = (*recon)(&srv.common)
	srv.Posting = (*posting)(&srv.common)
	srv.Payroll = (*payroll)(&srv.common)
	srv.Audit = (*audit)(&srv.common)
	srv.Report = (*report)(&srv.common)

	return srv
}
