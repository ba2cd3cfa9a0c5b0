package config

import (
	"time"

	"github.com/pesaledger/go-ledger-core/internal/common/normalizer"
	"github.com/pesaledger/go-ledger-core/internal/models"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		Normalizer normalizer.HTTPConfig `json:"normalizer"`
		Recon      ReconDefaults         `json:"recon"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	// ReconDefaults are the engine-wide tuning values; tenants may override
	// thresholds individually (models.ReconOverrides).
	ReconDefaults struct {
		AutoAcceptThreshold   float64 `json:"auto_accept_threshold"`
		AutoAcceptMargin      float64 `json:"auto_accept_margin"`
		MinScoreThreshold     float64 `json:"min_score_threshold"`
		DateWindowDays        int     `json:"date_window_days"`
		AmountToleranceMinor  int64   `json:"amount_tolerance_minor"`
		TopCandidates         int     `json:"top_candidates"`
		BatchLimit            int     `json:"batch_limit"`
		NormalizerConcurrency int     `json:"normalizer_concurrency"`
	}
)

// Settings resolves the configured defaults into the engine's tuning set,
// falling back to the documented defaults for anything unset.
func (r ReconDefaults) Settings() models.ReconSettings {
	s := models.ReconSettings{
		AutoAcceptThreshold:  r.AutoAcceptThreshold,
		AutoAcceptMargin:     r.AutoAcceptMargin,
		MinScoreThreshold:    r.MinScoreThreshold,
		DateWindowDays:       r.DateWindowDays,
		AmountToleranceMinor: r.AmountToleranceMinor,
		TopCandidates:        r.TopCandidates,
	}
	if s.AutoAcceptThreshold == 0 {
		s.AutoAcceptThreshold = 0.90
	}
	if s.AutoAcceptMargin == 0 {
		s.AutoAcceptMargin = 0.05
	}
	if s.MinScoreThreshold == 0 {
		s.MinScoreThreshold = 0.50
	}
	if s.DateWindowDays == 0 {
		s.DateWindowDays = 3
	}
	if s.TopCandidates == 0 {
		s.TopCandidates = 3
	}
	return s
}
