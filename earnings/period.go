package earnings

// =============================================================================
// PERIOD SPEC - Reporting window selection
// =============================================================================
// A reporting window is either a named relative window ("last 7 days",
// "last 30 days") or an explicit inclusive date range with optionally open
// bounds. Relative windows are anchored to a caller-supplied "today" so the
// engine never touches the wall clock; callers resolve a PeriodSpec to a
// concrete DateRange before filtering.

type PeriodKind string

const (
	// PeriodRelative selects the last Days calendar days ending today.
	PeriodRelative PeriodKind = "relative"

	// PeriodRange selects an explicit [From, To] inclusive range.
	PeriodRange PeriodKind = "range"
)

// PeriodSpec describes a reporting window before resolution.
type PeriodSpec struct {
	Kind PeriodKind

	// Relative: window length in days, anchored at resolution time.
	Days int

	// Range: inclusive bounds. A nil bound is open (unbounded) on that side.
	From *Date
	To   *Date
}

// LastDays is the named relative window of the n calendar days ending today.
func LastDays(n int) PeriodSpec {
	return PeriodSpec{Kind: PeriodRelative, Days: n}
}

// Between is an explicit inclusive range. Either bound may be nil, meaning
// unbounded in that direction.
func Between(from, to *Date) PeriodSpec {
	return PeriodSpec{Kind: PeriodRange, From: from, To: to}
}

// Resolve turns the spec into concrete bounds. A relative window of n days
// resolves to [today-(n-1), today], so the window always includes today.
func (p PeriodSpec) Resolve(today Date) DateRange {
	switch p.Kind {
	case PeriodRelative:
		days := p.Days
		if days < 1 {
			days = 1
		}
		from := today.AddDays(-(days - 1))
		return DateRange{From: &from, To: &today}
	default:
		return DateRange{From: p.From, To: p.To}
	}
}

// =============================================================================
// DATE RANGE - Resolved inclusive window
// =============================================================================

// DateRange is a resolved window. Nil bounds are open: an open bound never
// excludes a record.
type DateRange struct {
	From *Date
	To   *Date
}

// Contains reports whether d falls within the range, bounds inclusive.
func (r DateRange) Contains(d Date) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && d.After(*r.To) {
		return false
	}
	return true
}

// FilterByPeriod returns the shifts whose date falls within the range,
// preserving input order.
func FilterByPeriod(shifts []ShiftRecord, r DateRange) []ShiftRecord {
	var out []ShiftRecord
	for _, s := range shifts {
		if r.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}
