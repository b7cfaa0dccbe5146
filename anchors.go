package folio

import "time"

// Anchors holds the start dates of all standard reporting periods,
// resolved to actual trading days. A zero Date means the anchor falls
// before inception and the period's metrics are not computable; that is
// a domain gap, not an error.
type Anchors struct {
	WoW           Date // 7 calendar days back
	MTD           Date // last day of the previous month
	QTD           Date // last day of the previous quarter
	YTD           Date // Dec 31 of the prior year
	PrevYearStart Date // Dec 31 two years back
	PrevYearEnd   Date // Dec 31 one year back
	Inception     Date // verbatim, never snapped
}

// ResolveAnchors computes the seven standard anchors relative to asOf,
// snapping each raw calendar boundary to the nearest trading day on or
// before it. Any raw or snapped date earlier than inception resolves to
// the zero Date.
func ResolveAnchors(asOf, inception Date, cal Calendar) Anchors {
	snap := func(raw Date) Date {
		if raw.Before(inception) {
			return Date{}
		}
		day, ok := cal.OnOrBefore(raw)
		if !ok || day.Before(inception) {
			return Date{}
		}
		return day
	}

	// Raw boundaries lean on NewDate's day-0 normalization: day 0 of a
	// month is the last day of the month before.
	firstOfQuarter := time.Month((int(asOf.Month())-1)/3*3 + 1)

	return Anchors{
		WoW:           snap(asOf.Add(-7)),
		MTD:           snap(NewDate(asOf.Year(), asOf.Month(), 0)),
		QTD:           snap(NewDate(asOf.Year(), firstOfQuarter, 0)),
		YTD:           snap(NewDate(asOf.Year()-1, time.December, 31)),
		PrevYearStart: snap(NewDate(asOf.Year()-2, time.December, 31)),
		PrevYearEnd:   snap(NewDate(asOf.Year()-1, time.December, 31)),
		Inception:     inception,
	}
}
