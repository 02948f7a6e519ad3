package earnings_test

import (
	"testing"
	"time"

	"github.com/drivestat/earnings-engine/earnings"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(y int, m time.Month, d int) earnings.Date {
	return earnings.NewDate(y, m, d)
}

func datePtr(y int, m time.Month, d int) *earnings.Date {
	v := earnings.NewDate(y, m, d)
	return &v
}

func datedShift(id string, d earnings.Date) earnings.ShiftRecord {
	return earnings.ShiftRecord{ID: id, Date: d}
}

func ids(shifts []earnings.ShiftRecord) []string {
	out := make([]string, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, s.ID)
	}
	return out
}

func sameIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// EXPLICIT RANGE FILTERING
// =============================================================================

func TestFilterByPeriod_BoundsAreInclusive(t *testing.T) {
	// GIVEN: Shifts on Jan 1, Jan 31 and Feb 1
	// WHEN: Filtering [2024-01-01, 2024-01-31]
	// THEN: Both boundary days are kept, February is excluded
	shifts := []earnings.ShiftRecord{
		datedShift("a", date(2024, time.January, 1)),
		datedShift("b", date(2024, time.January, 31)),
		datedShift("c", date(2024, time.February, 1)),
	}
	window := earnings.Between(datePtr(2024, time.January, 1), datePtr(2024, time.January, 31)).
		Resolve(date(2024, time.February, 15))

	got := ids(earnings.FilterByPeriod(shifts, window))
	if !sameIDs(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestFilterByPeriod_OpenBoundsExcludeNothing(t *testing.T) {
	shifts := []earnings.ShiftRecord{
		datedShift("a", date(2023, time.June, 1)),
		datedShift("b", date(2024, time.June, 1)),
		datedShift("c", date(2025, time.June, 1)),
	}

	// No bounds at all: everything passes.
	got := earnings.FilterByPeriod(shifts, earnings.DateRange{})
	if len(got) != 3 {
		t.Fatalf("open window should keep all shifts, kept %d", len(got))
	}

	// Only a lower bound.
	lower := earnings.DateRange{From: datePtr(2024, time.January, 1)}
	if got := ids(earnings.FilterByPeriod(shifts, lower)); !sameIDs(got, []string{"b", "c"}) {
		t.Errorf("lower-bounded window: expected [b c], got %v", got)
	}

	// Only an upper bound.
	upper := earnings.DateRange{To: datePtr(2024, time.December, 31)}
	if got := ids(earnings.FilterByPeriod(shifts, upper)); !sameIDs(got, []string{"a", "b"}) {
		t.Errorf("upper-bounded window: expected [a b], got %v", got)
	}
}

func TestFilterByPeriod_PreservesInputOrder(t *testing.T) {
	shifts := []earnings.ShiftRecord{
		datedShift("newest", date(2024, time.March, 9)),
		datedShift("middle", date(2024, time.March, 5)),
		datedShift("oldest", date(2024, time.March, 1)),
	}
	window := earnings.DateRange{From: datePtr(2024, time.March, 1), To: datePtr(2024, time.March, 31)}
	if got := ids(earnings.FilterByPeriod(shifts, window)); !sameIDs(got, []string{"newest", "middle", "oldest"}) {
		t.Errorf("expected input order preserved, got %v", got)
	}
}

func TestFilterByPeriod_EmptyInput(t *testing.T) {
	window := earnings.DateRange{From: datePtr(2024, time.March, 1)}
	if got := earnings.FilterByPeriod(nil, window); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

// =============================================================================
// RELATIVE WINDOW RESOLUTION
// =============================================================================

func TestLastDays_ResolvesToWindowEndingToday(t *testing.T) {
	// GIVEN: "last 7 days" evaluated on 2024-03-10
	// THEN: The window is [2024-03-04, 2024-03-10] - seven days incl. today
	today := date(2024, time.March, 10)
	window := earnings.LastDays(7).Resolve(today)

	if window.From == nil || !window.From.Equal(date(2024, time.March, 4)) {
		t.Errorf("expected from 2024-03-04, got %v", window.From)
	}
	if window.To == nil || !window.To.Equal(today) {
		t.Errorf("expected to 2024-03-10, got %v", window.To)
	}
}

func TestLastDays_CrossesMonthBoundary(t *testing.T) {
	window := earnings.LastDays(30).Resolve(date(2024, time.March, 10))
	if window.From == nil || window.From.String() != "2024-02-10" {
		t.Errorf("expected from 2024-02-10, got %v", window.From)
	}
}

func TestLastDays_DegenerateLengthIsSingleDay(t *testing.T) {
	today := date(2024, time.March, 10)
	for _, n := range []int{1, 0, -5} {
		window := earnings.LastDays(n).Resolve(today)
		if window.From == nil || !window.From.Equal(today) || window.To == nil || !window.To.Equal(today) {
			t.Errorf("LastDays(%d): expected [today, today], got [%v, %v]", n, window.From, window.To)
		}
	}
}

// =============================================================================
// DATE BEHAVIOR
// =============================================================================

func TestDate_ChronologicalMatchesLexicographic(t *testing.T) {
	// Structured comparison must agree with string comparison of ISO dates.
	pairs := [][2]string{
		{"2024-01-31", "2024-02-01"},
		{"2023-12-31", "2024-01-01"},
		{"2024-03-05", "2024-03-05"},
	}
	for _, p := range pairs {
		a, err := earnings.ParseDate(p[0])
		if err != nil {
			t.Fatalf("parse %s: %v", p[0], err)
		}
		b, err := earnings.ParseDate(p[1])
		if err != nil {
			t.Fatalf("parse %s: %v", p[1], err)
		}
		if a.Before(b) != (p[0] < p[1]) || a.Equal(b) != (p[0] == p[1]) {
			t.Errorf("comparison of %s vs %s disagrees with lexicographic order", p[0], p[1])
		}
	}
}

func TestDate_RoundTripsThroughJSON(t *testing.T) {
	d, err := earnings.ParseDate("2024-03-05")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2024-03-05"` {
		t.Errorf("expected quoted ISO date, got %s", raw)
	}

	var back earnings.Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed the date: %v != %v", back, d)
	}
}
