package folio

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Date
		err   bool
	}{
		{name: "iso format", input: "2025-07-01", want: NewDate(2025, time.July, 1)},
		{name: "lenient single digits", input: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{name: "garbage", input: "july first", err: true},
		{name: "empty", input: "", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.err {
				if err == nil {
					t.Fatal("want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNewDate_Normalization(t *testing.T) {
	// Day 0 normalizes to the last day of the previous month.
	if got, want := NewDate(2025, time.March, 0), MustParse("2025-02-28"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	// Leap year.
	if got, want := NewDate(2024, time.March, 0), MustParse("2024-02-29"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDate_Add(t *testing.T) {
	if got, want := MustParse("2025-01-01").Add(-1), MustParse("2024-12-31"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := MustParse("2025-02-28").Add(1), MustParse("2025-03-01"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDate_Ordering(t *testing.T) {
	a, b := MustParse("2025-01-01"), MustParse("2025-06-30")
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("ordering is inconsistent")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("compare is inconsistent")
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value must report IsZero")
	}
	if MustParse("2025-01-01").IsZero() {
		t.Error("real date must not report IsZero")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	want := MustParse("2025-07-01")
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-07-01"` {
		t.Errorf("got %s, want \"2025-07-01\"", b)
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCalendar_OnOrBefore(t *testing.T) {
	cal := NewCalendar([]Date{
		MustParse("2025-01-06"),
		MustParse("2025-01-07"),
		MustParse("2025-01-10"),
		MustParse("2025-01-07"), // duplicate, dropped
	})
	if cal.Len() != 3 {
		t.Fatalf("got %d days, want 3", cal.Len())
	}

	testCases := []struct {
		name   string
		target string
		want   string
		ok     bool
	}{
		{name: "exact hit", target: "2025-01-07", want: "2025-01-07", ok: true},
		{name: "gap snaps backward", target: "2025-01-09", want: "2025-01-07", ok: true},
		{name: "after the last day", target: "2025-02-01", want: "2025-01-10", ok: true},
		{name: "before the first day", target: "2025-01-01", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cal.OnOrBefore(MustParse(tc.target))
			if ok != tc.ok {
				t.Fatalf("got ok=%v, want %v", ok, tc.ok)
			}
			if ok && got != MustParse(tc.want) {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
