package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildTrialBalance(t *testing.T) {
	asOf := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("balanced ledger nets to zero", func(t *testing.T) {
		balances := []AccountBalance{
			{AccountCode: "1000", NormalSide: NormalBalanceDebit, BalanceMinor: -1_500_000},
			{AccountCode: "5000", NormalSide: NormalBalanceDebit, BalanceMinor: 1_500_000},
		}

		tb := BuildTrialBalance("tnt-1", "KES", asOf, balances)

		assert.True(t, tb.Balanced)
		assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
		// cash moved off its normal side, so it shows in the credit column
		assert.True(t, tb.Rows[0].Credit.Equal(decimal.NewFromInt(15000)))
		assert.True(t, tb.Rows[1].Debit.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("unbalanced ledger is flagged", func(t *testing.T) {
		balances := []AccountBalance{
			{AccountCode: "1000", NormalSide: NormalBalanceDebit, BalanceMinor: 100},
			{AccountCode: "4000", NormalSide: NormalBalanceCredit, BalanceMinor: 50},
		}

		tb := BuildTrialBalance("tnt-1", "KES", asOf, balances)

		assert.False(t, tb.Balanced)
	})

	t.Run("zero-exponent currency keeps whole units", func(t *testing.T) {
		balances := []AccountBalance{
			{AccountCode: "1000", NormalSide: NormalBalanceDebit, BalanceMinor: 2500},
			{AccountCode: "3000", NormalSide: NormalBalanceCredit, BalanceMinor: 2500},
		}

		tb := BuildTrialBalance("tnt-1", "UGX", asOf, balances)

		assert.True(t, tb.Rows[0].Debit.Equal(decimal.NewFromInt(2500)))
		assert.True(t, tb.Balanced)
	})
}

func TestAccountBalanceSignedMinor(t *testing.T) {
	asset := AccountBalance{NormalSide: NormalBalanceDebit, BalanceMinor: 700}
	revenue := AccountBalance{NormalSide: NormalBalanceCredit, BalanceMinor: 700}
	overdrawn := AccountBalance{NormalSide: NormalBalanceDebit, BalanceMinor: -300}

	assert.Equal(t, int64(700), asset.SignedMinor())
	assert.Equal(t, int64(-700), revenue.SignedMinor())
	assert.Equal(t, int64(-300), overdrawn.SignedMinor())
}

func TestSnapshotHash(t *testing.T) {
	a := Account{ID: 1, TenantID: "tnt-1", Code: "1000", Name: "Cash"}
	b := Account{ID: 1, TenantID: "tnt-1", Code: "1000", Name: "Cash"}
	c := Account{ID: 1, TenantID: "tnt-1", Code: "1000", Name: "Cash Box"}

	assert.Equal(t, SnapshotHash(a), SnapshotHash(b))
	assert.NotEqual(t, SnapshotHash(a), SnapshotHash(c))
	assert.Len(t, SnapshotHash(a), 64)
}
