package taxcalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var (
	testNilaiJual = decimal.NewFromInt(100_000_000)
	testBobot     = decimal.NewFromInt(1)
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeBilling_SinglePeriod(t *testing.T) {
	// Paid through 2023-05-10; checking mid-2024: only 2024/2025 is due.
	s := ComputeBilling(d(2023, time.May, 10), testNilaiJual, testBobot, d(2024, time.June, 1), DefaultMaxPeriods)

	if len(s.Periods) != 1 {
		t.Fatalf("got %d periods, want 1", len(s.Periods))
	}

	p := s.Periods[0]
	if p.Label != "2024/2025" {
		t.Errorf("label = %q", p.Label)
	}
	if !p.DueDate.Equal(d(2024, time.May, 10)) {
		t.Errorf("due date = %s, want payment anniversary", p.DueDate.Format("2006-01-02"))
	}
	if p.IsOpsen {
		t.Error("2024 due date must predate the opsen cutover")
	}
	// 2024-05-10 -> 2024-06-01 is 22 days: 0 months + day component > 15.
	if p.MonthsLate != 1 {
		t.Errorf("months late = %d, want 1", p.MonthsLate)
	}
}

func TestComputeBilling_VisibilityWindow(t *testing.T) {
	lastPayment := d(2023, time.October, 1)

	// 2024/2025 falls due 2024-10-01; it must stay hidden before 2024-07-01.
	before := ComputeBilling(lastPayment, testNilaiJual, testBobot, d(2024, time.June, 30), DefaultMaxPeriods)
	if len(before.Periods) != 0 {
		t.Errorf("period visible too early: %+v", before.Periods)
	}

	atWindow := ComputeBilling(lastPayment, testNilaiJual, testBobot, d(2024, time.July, 1), DefaultMaxPeriods)
	if len(atWindow.Periods) != 1 {
		t.Fatalf("period not visible at window open: got %d", len(atWindow.Periods))
	}
	if atWindow.Periods[0].MonthsLate != 0 {
		t.Errorf("pre-due period has %d late months", atWindow.Periods[0].MonthsLate)
	}
}

func TestComputeBilling_VisibilityWindowEndOfMonth(t *testing.T) {
	// Due 2025-05-31: the window opens on Feb 28, not a normalized March date.
	lastPayment := d(2024, time.May, 31)

	open := ComputeBilling(lastPayment, testNilaiJual, testBobot, d(2025, time.February, 28), DefaultMaxPeriods)
	if len(open.Periods) != 1 {
		t.Errorf("period hidden at window open: got %d periods", len(open.Periods))
	}

	closed := ComputeBilling(lastPayment, testNilaiJual, testBobot, d(2025, time.February, 27), DefaultMaxPeriods)
	if len(closed.Periods) != 0 {
		t.Errorf("period visible before window open: %+v", closed.Periods)
	}
}

func TestComputeBilling_OpsenCutoverPerPeriod(t *testing.T) {
	// Anniversary Feb 1: 2024/2025 due 2024-02-01 (old regime),
	// 2025/2026 due 2025-02-01 (opsen regime).
	s := ComputeBilling(d(2023, time.February, 1), testNilaiJual, testBobot, d(2025, time.March, 1), DefaultMaxPeriods)

	if len(s.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(s.Periods))
	}
	if s.Periods[0].IsOpsen {
		t.Error("2024 period flagged opsen")
	}
	if !s.Periods[1].IsOpsen {
		t.Error("2025 period not flagged opsen")
	}

	// Old regime principal vs opsen-regime principal for the same base.
	if !s.Periods[0].Amounts.PKB.Equal(decimal.NewFromInt(1_500_000)) {
		t.Errorf("old-regime PKB = %s", s.Periods[0].Amounts.PKB)
	}
	if !s.Periods[1].Amounts.PKB.Equal(decimal.NewFromInt(904_000)) {
		t.Errorf("opsen-regime PKB = %s", s.Periods[1].Amounts.PKB)
	}
	if !s.Periods[1].Amounts.Opsen.Equal(decimal.NewFromInt(596_640)) {
		t.Errorf("opsen = %s", s.Periods[1].Amounts.Opsen)
	}
}

func TestComputeBilling_TruncatesToMostRecent(t *testing.T) {
	// 8 eligible periods (2018..2025), cap at 6.
	lastPayment := d(2017, time.March, 1)
	asOf := d(2025, time.June, 1)

	full := ComputeBilling(lastPayment, testNilaiJual, testBobot, asOf, 100)
	if len(full.Periods) != 8 {
		t.Fatalf("setup: got %d periods uncapped, want 8", len(full.Periods))
	}

	s := ComputeBilling(lastPayment, testNilaiJual, testBobot, asOf, 6)
	if len(s.Periods) != 6 {
		t.Fatalf("got %d periods, want 6", len(s.Periods))
	}
	if s.Periods[0].Label != "2020/2021" {
		t.Errorf("oldest retained = %q, want 2020/2021", s.Periods[0].Label)
	}
	if s.Periods[5].Label != "2025/2026" {
		t.Errorf("newest retained = %q, want 2025/2026", s.Periods[5].Label)
	}

	// Totals must cover only the retained six.
	var wantPKB decimal.Decimal
	for _, p := range s.Periods {
		wantPKB = wantPKB.Add(p.Amounts.PKB)
	}
	if !s.TotalPKB.Equal(wantPKB) {
		t.Errorf("TotalPKB = %s, want %s (retained periods only)", s.TotalPKB, wantPKB)
	}
	if s.TotalPKB.Equal(full.TotalPKB) {
		t.Error("totals include dropped periods")
	}
}

func TestComputeBilling_GrandTotal(t *testing.T) {
	s := ComputeBilling(d(2023, time.May, 10), testNilaiJual, testBobot, d(2024, time.June, 1), DefaultMaxPeriods)

	want := s.TotalPKB.Add(s.TotalDendaPKB).Add(s.TotalOpsen).Add(s.TotalDendaOpsen)
	if !s.GrandTotal().Equal(want) {
		t.Errorf("grand total = %s, want %s", s.GrandTotal(), want)
	}

	// Single pre-opsen period, 1 late month: PKB 1,500,000 + denda 4%.
	if !s.GrandTotal().Equal(decimal.NewFromInt(1_560_000)) {
		t.Errorf("grand total = %s, want 1560000", s.GrandTotal())
	}
}

func TestComputeBilling_LeapDayAnniversary(t *testing.T) {
	// Paid on a leap day; the 2025 anniversary clamps to Feb 28.
	s := ComputeBilling(d(2024, time.February, 29), testNilaiJual, testBobot, d(2025, time.March, 15), DefaultMaxPeriods)

	if len(s.Periods) != 1 {
		t.Fatalf("got %d periods, want 1", len(s.Periods))
	}
	if !s.Periods[0].DueDate.Equal(d(2025, time.February, 28)) {
		t.Errorf("due date = %s, want 2025-02-28", s.Periods[0].DueDate.Format("2006-01-02"))
	}
	if !s.Periods[0].IsOpsen {
		t.Error("2025-02-28 due date must be opsen eligible")
	}
}
