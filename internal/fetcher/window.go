package fetcher

import "time"

// Window is the half-open UTC interval [Start, End) covering one
// calendar year.
type Window struct {
	Year  int
	Start time.Time
	End   time.Time
}

// NewWindow builds the fetch window for a calendar year.
func NewWindow(year int) Window {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Year:  year,
		Start: start,
		End:   start.AddDate(1, 0, 0),
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Before reports whether t falls strictly before the window start.
func (w Window) Before(t time.Time) bool {
	return t.Before(w.Start)
}
