// Package monitoring wraps newrelic segments behind a small helper used at
// the top of repository and service methods:
//
//	monitor := monitoring.New(ctx)
//	defer monitor.Finish(monitoring.WithFinishCheckError(err))
package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time

	segment *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New starts a segment named after the calling function, inferring the
// layer from the caller's file path when not given explicitly.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	fOpts := &initOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	if fOpts.segmentName == "" {
		pc, file, _, ok := runtime.Caller(1)
		if !ok {
			pc = 0
		}

		segmentName := "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			segmentName = getSegmentName(fn.Name())
		}
		fOpts.segmentName = segmentName

		switch {
		case strings.Contains(file, LayerRepository):
			fOpts.layer = LayerRepository
		case strings.Contains(file, LayerService):
			fOpts.layer = LayerService
		case strings.Contains(file, LayerDelivery):
			fOpts.layer = LayerDelivery
		default:
			fOpts.layer = LayerUnknown
		}
	}

	txn := newrelic.FromContext(ctx)
	segment := txn.StartSegment(fOpts.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", fOpts.layer)
	}

	return &Monitor{
		ctx:         ctx,
		layer:       fOpts.layer,
		start:       time.Now(),
		segmentName: fOpts.segmentName,
		segment:     segment,
	}
}

// NewMiddlewareRoundTripper instruments outbound http calls; the newrelic
// transaction is already on the request context.
func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return newrelic.NewRoundTripper(next)
}
