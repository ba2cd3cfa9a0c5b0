// Package graceful coordinates background process startup and ordered
// shutdown on SIGINT/SIGTERM/SIGUSR1.
package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p != nil {
			go func(start func() error) {
				_ = start()
			}(p)
		}
	}
}

// StopProcessAtBackground blocks until a termination signal arrives, then
// runs the stoppers. Stoppers run in reverse registration order so
// dependents shut down before their dependencies.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sigusr1 := make(chan os.Signal, 1)
	signal.Notify(sigusr1, syscall.SIGUSR1)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
	case <-sigusr1:
	}
	StopProcess(duration, ps...)
}

func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	slices.Reverse(ps)

	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			_ = p(ctx)
		}()
	}
}
