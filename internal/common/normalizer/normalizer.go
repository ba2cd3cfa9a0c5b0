// Package normalizer defines the vendor-normalizer collaborator contract.
// The matching model behind it is external; the engine only consumes a
// canonical vendor key and a pairwise similarity score.
package normalizer

import (
	"context"
)

//go:generate mockgen -source=normalizer.go -destination=mock/normalizer_mock.go -package=mock

// Client is intentionally a pure lookup interface so reconciliation scoring
// stays deterministic under test with a fake behind it.
type Client interface {
	// Normalize maps raw vendor text to its canonical key.
	Normalize(ctx context.Context, rawText string) (string, error)
	// Similarity scores two canonical keys in [0,1].
	Similarity(ctx context.Context, keyA, keyB string) (float64, error)
}
