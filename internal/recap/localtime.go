package recap

import "time"

// LocalTime is a UTC instant shifted into the viewer's clock.
type LocalTime struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
	Hour    int
	DateKey string // YYYY-MM-DD in local time
}

// Localize shifts a UTC timestamp by a fixed minute offset (positive =
// ahead of UTC, so UTC+2 is +120) and reports its local calendar
// fields. There is no DST modeling; the offset the caller supplies is
// applied to every timestamp in the year.
func Localize(t time.Time, offsetMinutes int) LocalTime {
	local := t.UTC().Add(time.Duration(offsetMinutes) * time.Minute)
	return LocalTime{
		Year:    local.Year(),
		Month:   local.Month(),
		Day:     local.Day(),
		Weekday: local.Weekday(),
		Hour:    local.Hour(),
		DateKey: local.Format("2006-01-02"),
	}
}
