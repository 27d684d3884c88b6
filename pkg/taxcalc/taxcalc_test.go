package taxcalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestIsOpsenEligible_Cutover(t *testing.T) {
	tests := []struct {
		due  time.Time
		want bool
	}{
		{time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		if got := IsOpsenEligible(tt.due); got != tt.want {
			t.Errorf("IsOpsenEligible(%s) = %v, want %v", tt.due.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestCalculatePKB(t *testing.T) {
	nilaiJual := decimal.NewFromInt(100_000_000)
	bobot := decimal.NewFromInt(1)

	// Old regime: 1.5% × 100,000,000 × 1 × 100%
	lama := CalculatePKB(nilaiJual, bobot, false)
	if !lama.Equal(decimal.NewFromInt(1_500_000)) {
		t.Errorf("pre-opsen PKB = %s, want 1500000", lama)
	}

	// Opsen regime: 1% × 100,000,000 × 1 × 90.4%
	baru := CalculatePKB(nilaiJual, bobot, true)
	if !baru.Equal(decimal.NewFromInt(904_000)) {
		t.Errorf("opsen PKB = %s, want 904000", baru)
	}
}

func TestCalculateOpsen(t *testing.T) {
	pkb := decimal.NewFromInt(904_000)

	if got := CalculateOpsen(pkb, true); !got.Equal(decimal.NewFromInt(596_640)) {
		t.Errorf("opsen = %s, want 596640", got)
	}
	if got := CalculateOpsen(pkb, false); !got.IsZero() {
		t.Errorf("opsen outside regime = %s, want 0", got)
	}
}

func TestCalculateDendaPKB(t *testing.T) {
	pkb := decimal.NewFromInt(1_500_000)

	tests := []struct {
		name       string
		monthsLate int
		isOpsen    bool
		want       int64
	}{
		{"old regime zero months", 0, false, 30_000},  // 2%
		{"old regime one month", 1, false, 60_000},    // 4%
		{"old regime six months", 6, false, 210_000},  // 14%
		{"opsen regime zero months", 0, true, 15_000}, // 1%
		{"opsen regime one month", 1, true, 45_000},   // 3%
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDendaPKB(pkb, tt.monthsLate, tt.isOpsen)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("denda PKB = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateDendaOpsen(t *testing.T) {
	opsen := decimal.NewFromInt(596_640)

	// 1% + 2×1% = 3%
	got := CalculateDendaOpsen(opsen, 2, true)
	if want := decimal.NewFromFloat(17899.2); !got.Equal(want) {
		t.Errorf("denda opsen = %s, want %s", got, want)
	}

	if got := CalculateDendaOpsen(opsen, 2, false); !got.IsZero() {
		t.Errorf("denda opsen outside regime = %s, want 0", got)
	}
}

func TestCalculate_Total(t *testing.T) {
	a := Calculate(decimal.NewFromInt(100_000_000), decimal.NewFromInt(1), 0, false)

	if !a.PKB.Equal(decimal.NewFromInt(1_500_000)) {
		t.Errorf("PKB = %s", a.PKB)
	}
	if !a.Opsen.IsZero() || !a.DendaOpsen.IsZero() {
		t.Errorf("opsen fields should be zero pre-cutover: %s / %s", a.Opsen, a.DendaOpsen)
	}
	if want := decimal.NewFromInt(1_530_000); !a.Total().Equal(want) {
		t.Errorf("total = %s, want %s", a.Total(), want)
	}
}

func TestCalculate_FractionalBobot(t *testing.T) {
	// Trucks carry a bobot above 1; values must stay exact through the chain.
	a := Calculate(decimal.NewFromInt(150_000_000), decimal.NewFromFloat(1.3), 0, true)

	// 1% × 150,000,000 × 1.3 × 90.4% = 1,762,800
	if want := decimal.NewFromInt(1_762_800); !a.PKB.Equal(want) {
		t.Errorf("PKB = %s, want %s", a.PKB, want)
	}
	// 66% of PKB
	if want := decimal.NewFromInt(1_163_448); !a.Opsen.Equal(want) {
		t.Errorf("opsen = %s, want %s", a.Opsen, want)
	}
}
