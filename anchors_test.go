package folio

import "testing"

// weekdayCalendar builds a calendar of all weekdays in 2024-2025.
func weekdayCalendar() Calendar {
	var days []Date
	for d := MustParse("2024-01-01"); !d.After(MustParse("2025-12-31")); d = d.Add(1) {
		switch d.time().Weekday() {
		case 0, 6: // Sunday, Saturday
		default:
			days = append(days, d)
		}
	}
	return NewCalendar(days)
}

func TestResolveAnchors(t *testing.T) {
	cal := weekdayCalendar()
	inception := MustParse("2024-03-15")

	// 2025-08-14 is a Thursday.
	anchors := ResolveAnchors(MustParse("2025-08-14"), inception, cal)

	testCases := []struct {
		name string
		got  Date
		want string
	}{
		{name: "WoW is 7 calendar days back", got: anchors.WoW, want: "2025-08-07"},
		{name: "MTD is the last trading day of July", got: anchors.MTD, want: "2025-07-31"},
		{name: "QTD is the last trading day of June", got: anchors.QTD, want: "2025-06-30"},
		// Dec 31 2024 is a Tuesday, a trading day.
		{name: "YTD is Dec 31 of the prior year", got: anchors.YTD, want: "2024-12-31"},
		{name: "PrevYearEnd matches YTD", got: anchors.PrevYearEnd, want: "2024-12-31"},
		{name: "Inception passes through verbatim", got: anchors.Inception, want: "2024-03-15"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != MustParse(tc.want) {
				t.Errorf("got %s, want %s", tc.got, tc.want)
			}
		})
	}

	t.Run("PrevYearStart before inception resolves to zero", func(t *testing.T) {
		// Dec 31 2023 predates the 2024-03-15 inception.
		if !anchors.PrevYearStart.IsZero() {
			t.Errorf("got %s, want zero date", anchors.PrevYearStart)
		}
	})
}

func TestResolveAnchors_WeekendSnapping(t *testing.T) {
	cal := weekdayCalendar()
	inception := MustParse("2024-01-02")

	// 2025-06-08 is a Sunday; 7 days back lands on Sunday June 1, which
	// must snap to Friday May 30.
	anchors := ResolveAnchors(MustParse("2025-06-08"), inception, cal)
	if got, want := anchors.WoW, MustParse("2025-05-30"); got != want {
		t.Errorf("WoW: got %s, want %s", got, want)
	}

	// May 31 2025 is a Saturday: the MTD anchor snaps to Friday May 30.
	if got, want := anchors.MTD, MustParse("2025-05-30"); got != want {
		t.Errorf("MTD: got %s, want %s", got, want)
	}
}

func TestResolveAnchors_AllPreInception(t *testing.T) {
	cal := weekdayCalendar()
	// Inception after asOf's period boundaries: every anchor but
	// inception resolves to zero.
	inception := MustParse("2025-08-12")
	anchors := ResolveAnchors(MustParse("2025-08-14"), inception, cal)

	for _, tc := range []struct {
		name string
		got  Date
	}{
		{"WoW", anchors.WoW},
		{"MTD", anchors.MTD},
		{"QTD", anchors.QTD},
		{"YTD", anchors.YTD},
		{"PrevYearStart", anchors.PrevYearStart},
		{"PrevYearEnd", anchors.PrevYearEnd},
	} {
		if !tc.got.IsZero() {
			t.Errorf("%s: got %s, want zero date", tc.name, tc.got)
		}
	}
	if anchors.Inception.IsZero() {
		t.Error("inception must never be zeroed")
	}
}

func TestResolveAnchors_Idempotent(t *testing.T) {
	cal := weekdayCalendar()
	inception := MustParse("2024-03-15")
	asOf := MustParse("2025-08-14")
	a := ResolveAnchors(asOf, inception, cal)
	b := ResolveAnchors(asOf, inception, cal)
	if a != b {
		t.Errorf("anchors differ across calls: %+v vs %+v", a, b)
	}
}
