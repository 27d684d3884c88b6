package datemath

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       Diff
	}{
		{
			name:  "same day",
			start: date(2024, time.January, 1),
			end:   date(2024, time.January, 1),
			want:  Diff{Years: 0, Months: 0, Days: 0},
		},
		{
			name:  "plain month gap",
			start: date(2024, time.January, 1),
			end:   date(2024, time.March, 1),
			want:  Diff{Years: 0, Months: 2, Days: 0},
		},
		{
			name:  "day borrow from previous month",
			start: date(2024, time.January, 20),
			end:   date(2024, time.March, 10),
			// Feb has 29 days in 2024: 1 month plus 29-20+10 = 19 days
			want: Diff{Years: 0, Months: 1, Days: 19},
		},
		{
			name:  "month borrow from year",
			start: date(2023, time.November, 5),
			end:   date(2024, time.February, 5),
			want:  Diff{Years: 0, Months: 3, Days: 0},
		},
		{
			name:  "cumulative months across years",
			start: date(2022, time.January, 1),
			end:   date(2024, time.April, 16),
			want:  Diff{Years: 2, Months: 27, Days: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Between(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("Between(%s, %s) = %+v, want %+v",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestTotalDays(t *testing.T) {
	if got := TotalDays(date(2024, time.January, 1), date(2024, time.January, 31)); got != 30 {
		t.Errorf("TotalDays = %d, want 30", got)
	}
	if got := TotalDays(date(2023, time.January, 1), date(2024, time.January, 1)); got != 365 {
		t.Errorf("TotalDays across 2023 = %d, want 365", got)
	}
}

func TestPenaltyMonths_NotYetDue(t *testing.T) {
	due := date(2024, time.January, 1)

	if got := PenaltyMonths(due, due, MaxPenaltyMonths); got != 0 {
		t.Errorf("same day: got %d, want 0", got)
	}
	if got := PenaltyMonths(due, due.AddDate(0, 0, -1), MaxPenaltyMonths); got != 0 {
		t.Errorf("day before due: got %d, want 0", got)
	}
}

func TestPenaltyMonths_GraceBoundary(t *testing.T) {
	due := date(2024, time.January, 1)

	// 2024-02-16 is 1 month + 15 days late: still within grace.
	within := PenaltyMonths(due, date(2024, time.February, 16), MaxPenaltyMonths)
	if within != 1 {
		t.Errorf("day component 15: got %d, want 1", within)
	}

	// One more day crosses the grace threshold.
	over := PenaltyMonths(due, date(2024, time.February, 17), MaxPenaltyMonths)
	if over != within+1 {
		t.Errorf("day component 16: got %d, want %d", over, within+1)
	}
}

func TestPenaltyMonths_Monotonic(t *testing.T) {
	due := date(2023, time.June, 15)

	prev := 0
	for i := 0; i < 1200; i += 7 {
		asOf := due.AddDate(0, 0, i)
		got := PenaltyMonths(due, asOf, MaxPenaltyMonths)
		if got < prev {
			t.Fatalf("penalty months decreased at +%dd: %d -> %d", i, prev, got)
		}
		if got > MaxPenaltyMonths {
			t.Fatalf("penalty months %d exceeds cap at +%dd", got, i)
		}
		prev = got
	}
}

func TestPenaltyMonths_Cap(t *testing.T) {
	due := date(2019, time.January, 1)
	if got := PenaltyMonths(due, date(2025, time.January, 1), MaxPenaltyMonths); got != MaxPenaltyMonths {
		t.Errorf("5 years late: got %d, want cap %d", got, MaxPenaltyMonths)
	}
}

func TestAnniversaryInYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		base time.Time
		want time.Time
	}{
		{
			name: "plain anniversary",
			year: 2024,
			base: date(2021, time.May, 10),
			want: date(2024, time.May, 10),
		},
		{
			name: "leap day clamps to Feb 28",
			year: 2025,
			base: date(2024, time.February, 29),
			want: date(2025, time.February, 28),
		},
		{
			name: "leap day kept in leap year",
			year: 2028,
			base: date(2024, time.February, 29),
			want: date(2028, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnniversaryInYear(tt.year, tt.base); !got.Equal(tt.want) {
				t.Errorf("AnniversaryInYear(%d, %s) = %s, want %s",
					tt.year, tt.base.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestMonthsBefore(t *testing.T) {
	tests := []struct {
		name   string
		t      time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain subtraction",
			t:      date(2025, time.May, 10),
			months: 3,
			want:   date(2025, time.February, 10),
		},
		{
			name:   "end of month clamps instead of normalizing",
			t:      date(2025, time.May, 31),
			months: 3,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "clamp keeps leap day",
			t:      date(2024, time.May, 31),
			months: 3,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "crosses year boundary",
			t:      date(2025, time.January, 15),
			months: 3,
			want:   date(2024, time.October, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBefore(tt.t, tt.months); !got.Equal(tt.want) {
				t.Errorf("MonthsBefore(%s, %d) = %s, want %s",
					tt.t.Format("2006-01-02"), tt.months, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNextAnnualAfter(t *testing.T) {
	ref := date(2025, time.March, 15)

	// Expired date rolls forward past the reference.
	got := NextAnnualAfter(date(2022, time.June, 1), ref)
	if want := date(2025, time.June, 1); !got.Equal(want) {
		t.Errorf("got %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	// A date already in the future is untouched.
	future := date(2025, time.December, 1)
	if got := NextAnnualAfter(future, ref); !got.Equal(future) {
		t.Errorf("future date moved: got %s", got.Format("2006-01-02"))
	}

	// Equal to the reference still advances (strictly after).
	if got := NextAnnualAfter(ref, ref); !got.After(ref) {
		t.Errorf("equal date did not advance: got %s", got.Format("2006-01-02"))
	}
}
