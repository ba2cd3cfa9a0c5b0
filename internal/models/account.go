package models

import (
	"time"
)

type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

type NormalBalance string

const (
	NormalBalanceDebit  NormalBalance = "DEBIT"
	NormalBalanceCredit NormalBalance = "CREDIT"
)

// NormalBalanceForType returns the conventional balance side: assets and
// expenses carry debit balances, everything else credit.
func NormalBalanceForType(t AccountType) NormalBalance {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return NormalBalanceDebit
	default:
		return NormalBalanceCredit
	}
}

type Account struct {
	ID            uint64        `json:"id"`
	TenantID      string        `json:"tenantId"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Type          AccountType   `json:"type"`
	NormalBalance NormalBalance `json:"normalBalance"`
	IsActive      bool          `json:"isActive"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SignedDelta converts one journal line into the balance movement for this
// account, normalized to its normal balance side. A debit grows a
// debit-normal balance and shrinks a credit-normal one; credits the inverse.
func (a Account) SignedDelta(debitMinor, creditMinor int64) int64 {
	if a.NormalBalance == NormalBalanceDebit {
		return debitMinor - creditMinor
	}
	return creditMinor - debitMinor
}

type CreateAccountRequest struct {
	Code string      `json:"code" validate:"required,accountCode"`
	Name string      `json:"name" validate:"required,max=120"`
	Type AccountType `json:"type" validate:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

type UpdateAccountRequest struct {
	Name *string      `json:"name,omitempty" validate:"omitempty,max=120"`
	Type *AccountType `json:"type,omitempty" validate:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

type AccountFilterOptions struct {
	Type     *AccountType
	IsActive *bool
	Codes    []string
	Limit    int
	Offset   int
}

// DefaultChartEntry seeds a tenant with the default Kenyan chart used at
// onboarding. Tenants may extend or deactivate accounts afterwards.
type DefaultChartEntry struct {
	Code string
	Name string
	Type AccountType
}

var DefaultChart = []DefaultChartEntry{
	{Code: "1000", Name: "Cash and Bank", Type: AccountTypeAsset},
	{Code: "2000", Name: "Accounts Payable", Type: AccountTypeLiability},
	{Code: "2100", Name: "VAT Payable", Type: AccountTypeLiability},
	{Code: "2200", Name: "PAYE Payable", Type: AccountTypeLiability},
	{Code: "2210", Name: "NSSF Payable", Type: AccountTypeLiability},
	{Code: "2220", Name: "NHIF Payable", Type: AccountTypeLiability},
	{Code: "3000", Name: "Owner Capital", Type: AccountTypeEquity},
	{Code: "4000", Name: "Sales Revenue", Type: AccountTypeRevenue},
	{Code: "5000", Name: "General Expenses", Type: AccountTypeExpense},
	{Code: "5100", Name: "Payroll Expenses", Type: AccountTypeExpense},
	{Code: "5200", Name: "Fleet Expenses", Type: AccountTypeExpense},
}
