package taxcalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpsenCutover is the first due date on which the opsen regime applies.
// Periods due before it are billed under the old PKB-only rates.
var OpsenCutover = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

var (
	tarifOpsen    = decimal.NewFromFloat(0.01)  // 1%
	tarifLama     = decimal.NewFromFloat(0.015) // 1.5%
	pengenaanBaru = decimal.NewFromFloat(0.904) // 90.4%
	pengenaanLama = decimal.NewFromInt(1)

	opsenRate = decimal.NewFromFloat(0.66) // opsen is 66% of PKB

	dendaBaseOpsen = decimal.NewFromFloat(0.01)
	dendaBaseLama  = decimal.NewFromFloat(0.02)
	dendaStepPKB   = decimal.NewFromFloat(0.02) // +2% per late month
	dendaStepOpsen = decimal.NewFromFloat(0.01) // +1% per late month
)

// Amounts is the outcome of the PKB/opsen formula for a single tax period.
// Values carry full precision; rounding and display formatting belong to the
// response layer.
type Amounts struct {
	PKB        decimal.Decimal
	Opsen      decimal.Decimal
	DendaPKB   decimal.Decimal
	DendaOpsen decimal.Decimal
}

// Total sums principal and penalties for the period.
func (a Amounts) Total() decimal.Decimal {
	return a.PKB.Add(a.Opsen).Add(a.DendaPKB).Add(a.DendaOpsen)
}

// IsOpsenEligible reports whether a period due on dueDate falls under the
// opsen regime. The comparison is by calendar date only.
func IsOpsenEligible(dueDate time.Time) bool {
	d := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(OpsenCutover)
}

// CalculatePKB applies the PKB formula: tarif × nilai jual × bobot × pengenaan.
// Under the opsen regime the tarif drops to 1% and the taxable base to 90.4%.
func CalculatePKB(nilaiJual, bobot decimal.Decimal, isOpsen bool) decimal.Decimal {
	tarif := tarifLama
	pengenaan := pengenaanLama
	if isOpsen {
		tarif = tarifOpsen
		pengenaan = pengenaanBaru
	}
	return tarif.Mul(nilaiJual).Mul(bobot).Mul(pengenaan)
}

// CalculateOpsen returns the regional surcharge: 66% of PKB under the opsen
// regime, zero otherwise.
func CalculateOpsen(pkb decimal.Decimal, isOpsen bool) decimal.Decimal {
	if !isOpsen {
		return decimal.Zero
	}
	return pkb.Mul(opsenRate)
}

// CalculateDendaPKB computes the PKB late penalty:
// (1%|2% base + monthsLate × 2%) × PKB.
func CalculateDendaPKB(pkb decimal.Decimal, monthsLate int, isOpsen bool) decimal.Decimal {
	base := dendaBaseLama
	if isOpsen {
		base = dendaBaseOpsen
	}
	rate := base.Add(dendaStepPKB.Mul(decimal.NewFromInt(int64(monthsLate))))
	return rate.Mul(pkb)
}

// CalculateDendaOpsen computes the opsen late penalty:
// (1% + monthsLate × 1%) × opsen. Zero outside the opsen regime.
func CalculateDendaOpsen(opsen decimal.Decimal, monthsLate int, isOpsen bool) decimal.Decimal {
	if !isOpsen {
		return decimal.Zero
	}
	rate := dendaBaseOpsen.Add(dendaStepOpsen.Mul(decimal.NewFromInt(int64(monthsLate))))
	return rate.Mul(opsen)
}

// Calculate runs the full formula for one period: principal PKB and opsen
// plus both penalties for the given number of late months.
func Calculate(nilaiJual, bobot decimal.Decimal, monthsLate int, isOpsen bool) Amounts {
	pkb := CalculatePKB(nilaiJual, bobot, isOpsen)
	opsen := CalculateOpsen(pkb, isOpsen)

	return Amounts{
		PKB:        pkb,
		Opsen:      opsen,
		DendaPKB:   CalculateDendaPKB(pkb, monthsLate, isOpsen),
		DendaOpsen: CalculateDendaOpsen(opsen, monthsLate, isOpsen),
	}
}
