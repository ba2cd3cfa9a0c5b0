package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the running total for one account, normalized to the
// account's normal balance side. It only moves as a side effect of a
// committed journal entry.
type AccountBalance struct {
	TenantID     string        `json:"tenantId"`
	AccountID    uint64        `json:"accountId"`
	AccountCode  string        `json:"accountCode"`
	AccountName  string        `json:"accountName"`
	Type         AccountType   `json:"type"`
	NormalSide   NormalBalance `json:"normalSide"`
	BalanceMinor int64         `json:"balanceMinor"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// SignedMinor puts the balance on the trial-balance axis: debit-normal
// balances count positive and credit-normal ones negative, so the sum
// across all accounts is zero exactly when the books balance.
func (b AccountBalance) SignedMinor() int64 {
	if b.NormalSide == NormalBalanceDebit {
		return b.BalanceMinor
	}
	return -b.BalanceMinor
}

// TrialBalanceRow renders one account for the trial balance report. Amounts
// leave the core as decimals only here, at the presentation boundary.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type TrialBalance struct {
	TenantID    string            `json:"tenantId"`
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}

// BuildTrialBalance projects normalized balances onto debit/credit columns.
// currency decides the minor-unit exponent for display.
func BuildTrialBalance(tenantID, currency string, asOf time.Time, balances []AccountBalance) TrialBalance {
	tb := TrialBalance{
		TenantID:    tenantID,
		AsOf:        asOf,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	var signed int64
	for _, b := range balances {
		row := TrialBalanceRow{
			AccountCode: b.AccountCode,
			AccountName: b.AccountName,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}

		// A positive normalized balance sits on the account's normal
		// side; a negative one flips to the opposite column.
		amount := MinorToDecimal(AbsMinor(b.BalanceMinor), currency)
		onNormalSide := b.BalanceMinor >= 0
		debitSide := b.NormalSide == NormalBalanceDebit
		if onNormalSide == debitSide {
			row.Debit = amount
		} else {
			row.Credit = amount
		}

		signed += b.SignedMinor()

		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}

	tb.Balanced = signed == 0
	return tb
}
