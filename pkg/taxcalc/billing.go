package taxcalc

import (
	"fmt"
	"time"

	"samsat-api/pkg/datemath"

	"github.com/shopspring/decimal"
)

// DefaultMaxPeriods caps the billing breakdown to the most recent N annual
// periods. Older arrears are dropped from both the list and the totals.
const DefaultMaxPeriods = 6

// visibilityMonths: a period only becomes billable 3 months before its due
// date.
const visibilityMonths = 3

// Period is one annual liability line.
type Period struct {
	Label      string // "<year>/<year+1>"
	DueDate    time.Time
	MonthsLate int
	IsOpsen    bool
	Amounts    Amounts
}

// BillingSummary is the full outstanding bill: the retained periods plus
// totals computed over that retained set only.
type BillingSummary struct {
	Periods         []Period
	TotalPKB        decimal.Decimal
	TotalDendaPKB   decimal.Decimal
	TotalOpsen      decimal.Decimal
	TotalDendaOpsen decimal.Decimal
}

// GrandTotal sums every retained principal and penalty.
func (s BillingSummary) GrandTotal() decimal.Decimal {
	return s.TotalPKB.Add(s.TotalDendaPKB).Add(s.TotalOpsen).Add(s.TotalDendaOpsen)
}

// ComputeBilling enumerates the uncollected annual periods from the year
// after the last payment through the current year. Each period falls due on
// the payment-date anniversary of its year and only appears once today is
// within 3 months of that due date. When more than maxPeriods periods
// accrue, only the most recent maxPeriods are kept and the totals cover the
// kept set alone.
func ComputeBilling(lastPayment time.Time, nilaiJual, bobot decimal.Decimal, asOf time.Time, maxPeriods int) BillingSummary {
	if maxPeriods <= 0 {
		maxPeriods = DefaultMaxPeriods
	}

	lastPayment = datemath.Midnight(lastPayment)
	asOf = datemath.Midnight(asOf)

	var periods []Period
	for year := lastPayment.Year() + 1; year <= asOf.Year(); year++ {
		dueDate := datemath.AnniversaryInYear(year, lastPayment)

		// Not yet visible: billing opens 3 months ahead of the due date.
		if asOf.Before(datemath.MonthsBefore(dueDate, visibilityMonths)) {
			continue
		}

		isOpsen := IsOpsenEligible(dueDate)
		monthsLate := datemath.PenaltyMonths(dueDate, asOf, datemath.MaxPenaltyMonths)

		periods = append(periods, Period{
			Label:      fmt.Sprintf("%d/%d", year, year+1),
			DueDate:    dueDate,
			MonthsLate: monthsLate,
			IsOpsen:    isOpsen,
			Amounts:    Calculate(nilaiJual, bobot, monthsLate, isOpsen),
		})
	}

	if len(periods) > maxPeriods {
		periods = periods[len(periods)-maxPeriods:]
	}

	summary := BillingSummary{Periods: periods}
	for _, p := range periods {
		summary.TotalPKB = summary.TotalPKB.Add(p.Amounts.PKB)
		summary.TotalDendaPKB = summary.TotalDendaPKB.Add(p.Amounts.DendaPKB)
		summary.TotalOpsen = summary.TotalOpsen.Add(p.Amounts.Opsen)
		summary.TotalDendaOpsen = summary.TotalDendaOpsen.Add(p.Amounts.DendaOpsen)
	}

	return summary
}
