package repositories

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/pesaledger/go-ledger-core/internal/common"
)

func TestMapScanError(t *testing.T) {
	testCases := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil passes through", in: nil, want: nil},
		{name: "no rows becomes not found", in: sql.ErrNoRows, want: common.ErrDataNotFound},
		{name: "unique violation becomes conflict", in: &pq.Error{Code: "23505"}, want: common.ErrConflict},
		{name: "other pq codes untouched", in: &pq.Error{Code: "23503"}, want: nil},
		{name: "other errors untouched", in: assert.AnError, want: assert.AnError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapScanError(tc.in)
			if tc.want != nil {
				assert.ErrorIs(t, got, tc.want)
				return
			}
			assert.Equal(t, tc.in, got)
		})
	}
}
