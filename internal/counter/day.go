package counter

import "time"

// markerLayout matches the day string kept under MarkerKey.
const markerLayout = "Mon Jan 02 2006"

// dayKeyLayout names a day in the tally journal.
const dayKeyLayout = "2006-01-02"

// SameDay reports whether a falls on the same calendar day as b, in b's location.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayMarker formats t as the day string stored under MarkerKey.
func DayMarker(t time.Time) string {
	return t.Format(markerLayout)
}

// DayKey formats t as a journal day.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
