package folio

import (
	"slices"
)

// Calendar holds the sorted list of valid trading days covering a query
// range. It is supplied by the caller (typically from market data); the
// core never fetches it.
type Calendar struct {
	days []Date // sorted ascending, no duplicates
}

// NewCalendar creates a calendar from a list of trading days.
// The input is copied, sorted and de-duplicated.
func NewCalendar(days []Date) Calendar {
	sorted := slices.Clone(days)
	slices.SortFunc(sorted, Date.Compare)
	sorted = slices.CompactFunc(sorted, func(a, b Date) bool { return a == b })
	return Calendar{days: sorted}
}

// Len returns the number of trading days in the calendar.
func (c Calendar) Len() int { return len(c.days) }

// Days returns a copy of the trading days in chronological order.
func (c Calendar) Days() []Date { return slices.Clone(c.days) }

// OnOrBefore returns the nearest trading day on or before target.
// It returns false when no trading day is on or before target.
func (c Calendar) OnOrBefore(target Date) (Date, bool) {
	// The days slice is sorted, so we can use binary search.
	i, found := slices.BinarySearchFunc(c.days, target, Date.Compare)
	if found {
		return c.days[i], true
	}
	// `i` is the index where target would be inserted; the day we want
	// is the one just before it.
	if i == 0 {
		return Date{}, false
	}
	return c.days[i-1], true
}
