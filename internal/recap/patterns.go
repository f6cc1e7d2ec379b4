package recap

import (
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// Patterns reports the account's posting rhythm in local time: the
// most frequent month, weekday, and hour. Ties resolve to the earliest
// calendar value so results are reproducible.
type Patterns struct {
	MostActiveMonth   time.Month   `json:"mostActiveMonth"`
	MostActiveWeekday time.Weekday `json:"mostActiveWeekday"`
	MostActiveHour    int          `json:"mostActiveHour"`
}

// Visualizations carries the raw histograms the card renderers chart.
type Visualizations struct {
	PostsByMonth   [12]int `json:"postsByMonth"`   // index 0 = January
	PostsByWeekday [7]int  `json:"postsByWeekday"` // index 0 = Sunday
	PostsByHour    [24]int `json:"postsByHour"`
}

// ComputePatterns buckets posts by local month, weekday, and hour and
// returns both the modes and the underlying histograms.
func ComputePatterns(posts []bsky.Post, offsetMinutes int) (Patterns, Visualizations) {
	var v Visualizations
	for _, p := range posts {
		lt := Localize(p.CreatedAt, offsetMinutes)
		v.PostsByMonth[int(lt.Month)-1]++
		v.PostsByWeekday[int(lt.Weekday)]++
		v.PostsByHour[lt.Hour]++
	}

	return Patterns{
		MostActiveMonth:   time.Month(argmax(v.PostsByMonth[:]) + 1),
		MostActiveWeekday: time.Weekday(argmax(v.PostsByWeekday[:])),
		MostActiveHour:    argmax(v.PostsByHour[:]),
	}, v
}

// argmax returns the index of the largest count, preferring the lowest
// index on ties.
func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}
