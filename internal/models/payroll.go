package models

// Kenyan statutory payroll math, all in KES minor units (cents). Band
// tables follow the 2025 monthly schedules. Rates are expressed per mille
// so every computation stays in integer arithmetic; rounding is half up.

type payeBand struct {
	upToMinor int64 // cumulative upper limit, -1 means unbounded
	perMille  int64
}

var payeBands = []payeBand{
	{upToMinor: 2_400_000, perMille: 100},
	{upToMinor: 3_233_300, perMille: 250},
	{upToMinor: 50_000_000, perMille: 300},
	{upToMinor: 80_000_000, perMille: 325},
	{upToMinor: -1, perMille: 350},
}

const (
	nssfPerMille       = 60
	nssfTier1LimitMinor = 700_000
	nssfTier2LimitMinor = 2_900_000
)

type nhifBand struct {
	upToMinor         int64
	contributionMinor int64
}

var nhifBands = []nhifBand{
	{599_900, 15_000},
	{799_900, 30_000},
	{1_199_900, 40_000},
	{1_499_900, 50_000},
	{1_999_900, 60_000},
	{2_499_900, 75_000},
	{2_999_900, 85_000},
	{3_499_900, 90_000},
	{3_999_900, 95_000},
	{4_499_900, 100_000},
	{4_999_900, 110_000},
	{5_999_900, 120_000},
	{6_999_900, 130_000},
	{7_999_900, 140_000},
	{8_999_900, 150_000},
	{9_999_900, 160_000},
	{-1, 170_000},
}

func roundPerMille(amountMinor, perMille int64) int64 {
	return (amountMinor*perMille + 500) / 1000
}

// ComputePAYEMinor applies the graduated PAYE bands to a monthly gross.
func ComputePAYEMinor(grossMinor int64) int64 {
	var tax, prevLimit int64
	remaining := grossMinor
	for _, band := range payeBands {
		var width int64
		if band.upToMinor < 0 {
			width = remaining
		} else {
			width = band.upToMinor - prevLimit
			if width > remaining {
				width = remaining
			}
		}
		if width <= 0 {
			break
		}
		tax += roundPerMille(width, band.perMille)
		remaining -= width
		prevLimit = band.upToMinor
	}
	return tax
}

// ComputeNSSFMinor is the employee contribution: 6% of tier I (capped at
// 7,000 KES) plus 6% of tier II (7,000 to 29,000 KES).
func ComputeNSSFMinor(grossMinor int64) int64 {
	tier1 := grossMinor
	if tier1 > nssfTier1LimitMinor {
		tier1 = nssfTier1LimitMinor
	}
	total := roundPerMille(tier1, nssfPerMille)

	if grossMinor > nssfTier1LimitMinor {
		tier2 := grossMinor - nssfTier1LimitMinor
		if tier2 > nssfTier2LimitMinor-nssfTier1LimitMinor {
			tier2 = nssfTier2LimitMinor - nssfTier1LimitMinor
		}
		total += roundPerMille(tier2, nssfPerMille)
	}
	return total
}

// ComputeNHIFMinor looks up the fixed band contribution for a gross.
func ComputeNHIFMinor(grossMinor int64) int64 {
	for _, band := range nhifBands {
		if band.upToMinor < 0 || grossMinor <= band.upToMinor {
			return band.contributionMinor
		}
	}
	return nhifBands[len(nhifBands)-1].contributionMinor
}

type PayrollBreakdown struct {
	GrossMinor int64 `json:"grossMinor"`
	PAYEMinor  int64 `json:"payeMinor"`
	NSSFMinor  int64 `json:"nssfMinor"`
	NHIFMinor  int64 `json:"nhifMinor"`
	NetMinor   int64 `json:"netMinor"`
}

func ComputePayrollBreakdown(grossMinor int64) PayrollBreakdown {
	paye := ComputePAYEMinor(grossMinor)
	nssf := ComputeNSSFMinor(grossMinor)
	nhif := ComputeNHIFMinor(grossMinor)
	return PayrollBreakdown{
		GrossMinor: grossMinor,
		PAYEMinor:  paye,
		NSSFMinor:  nssf,
		NHIFMinor:  nhif,
		NetMinor:   grossMinor - paye - nssf - nhif,
	}
}

type PayrollEmployeeLine struct {
	EmployeeID string `json:"employeeId" validate:"required,max=64"`
	Name       string `json:"name" validate:"required,max=120"`
	GrossMinor int64  `json:"grossMinor" validate:"required,gt=0"`
}

type PayrollRunRequest struct {
	Period string                `json:"period" validate:"required,len=7"`
	Date   string                `json:"date" validate:"required,date"`
	Lines  []PayrollEmployeeLine `json:"lines" validate:"required,min=1,dive"`
}

// Payroll account codes in the default chart.
const (
	PayrollExpenseCode = "5100"
	PAYEPayableCode    = "2200"
	NSSFPayableCode    = "2210"
	NHIFPayableCode    = "2220"
	CashBankCode       = "1000"
)

// BuildPayrollDraft folds all employee lines into one balanced entry:
// gross debited to payroll expense, statutory deductions credited to their
// liability accounts, net pay credited to cash. Balance holds by
// construction because net = gross - deductions per line.
func BuildPayrollDraft(req PayrollRunRequest) EntryDraft {
	var gross, paye, nssf, nhif, net int64
	for _, line := range req.Lines {
		b := ComputePayrollBreakdown(line.GrossMinor)
		gross += b.GrossMinor
		paye += b.PAYEMinor
		nssf += b.NSSFMinor
		nhif += b.NHIFMinor
		net += b.NetMinor
	}

	draft := EntryDraft{
		Date:      req.Date,
		Memo:      "Payroll " + req.Period,
		Currency:  "KES",
		SourceRef: "payroll:" + req.Period,
		Lines: []DraftLine{
			{AccountCode: PayrollExpenseCode, DebitMinor: gross},
		},
	}
	for _, credit := range []struct {
		code   string
		amount int64
	}{
		{PAYEPayableCode, paye},
		{NSSFPayableCode, nssf},
		{NHIFPayableCode, nhif},
		{CashBankCode, net},
	} {
		if credit.amount > 0 {
			draft.Lines = append(draft.Lines, DraftLine{AccountCode: credit.code, CreditMinor: credit.amount})
		}
	}
	return draft
}
