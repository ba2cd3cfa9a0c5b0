package normalizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/pesaledger/go-ledger-core/internal/common"
)

type httpClient struct {
	rest       *resty.Client
	maxRetries uint64
}

type HTTPConfig struct {
	BaseURL    string        `json:"base_url"`
	Timeout    time.Duration `json:"timeout"`
	MaxRetries uint64        `json:"max_retries"`
}

// NewHTTPClient talks to the vendor-normalizer service. Calls are bound by
// the configured timeout and retried with exponential backoff; a deadline
// surfaces as ErrNormalizerTimeout so callers can leave records Pending.
func NewHTTPClient(cfg HTTPConfig) Client {
	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &httpClient{rest: rest, maxRetries: cfg.MaxRetries}
}

type normalizeResponse struct {
	VendorKey string `json:"vendorKey"`
}

type similarityResponse struct {
	Score float64 `json:"score"`
}

func (c *httpClient) Normalize(ctx context.Context, rawText string) (string, error) {
	var out normalizeResponse
	err := c.call(ctx, func() (*resty.Response, error) {
		return c.rest.R().
			SetContext(ctx).
			SetBody(map[string]string{"rawText": rawText}).
			SetResult(&out).
			Post("/v1/normalize")
	})
	if err != nil {
		return "", err
	}
	return out.VendorKey, nil
}

func (c *httpClient) Similarity(ctx context.Context, keyA, keyB string) (float64, error) {
	var out similarityResponse
	err := c.call(ctx, func() (*resty.Response, error) {
		return c.rest.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{"a": keyA, "b": keyB}).
			SetResult(&out).
			Get("/v1/similarity")
	})
	if err != nil {
		return 0, err
	}
	return out.Score, nil
}

func (c *httpClient) call(ctx context.Context, do func() (*resty.Response, error)) error {
	operation := func() error {
		resp, err := do()
		if err != nil {
			if isTimeout(ctx, err) {
				return backoff.Permanent(common.ErrNormalizerTimeout)
			}
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("normalizer returned %d", resp.StatusCode())
		}
		if resp.IsError() {
			return backoff.Permanent(fmt.Errorf("normalizer returned %d", resp.StatusCode()))
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries)
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	return errors.Is(err, os.ErrDeadlineExceeded)
}
