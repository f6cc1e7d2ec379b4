package recap

import (
	"sort"
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// Streak reports the longest run of consecutive local calendar days
// with at least one post.
type Streak struct {
	Longest    int    `json:"longest"`
	Start      string `json:"start,omitempty"` // date key of the longest run
	End        string `json:"end,omitempty"`
	ActiveDays int    `json:"activeDays"` // distinct posting days in the year
}

// ComputeStreak walks the distinct set of local posting dates in
// ascending order and tracks the longest consecutive-day run. A single
// posting day yields a streak of 1.
func ComputeStreak(posts []bsky.Post, offsetMinutes int) Streak {
	seen := make(map[string]bool, len(posts))
	var days []time.Time
	for _, p := range posts {
		lt := Localize(p.CreatedAt, offsetMinutes)
		if seen[lt.DateKey] {
			continue
		}
		seen[lt.DateKey] = true
		days = append(days, time.Date(lt.Year, lt.Month, lt.Day, 0, 0, 0, 0, time.UTC))
	}
	if len(days) == 0 {
		return Streak{}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	bestEnd := days[0]
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
			bestEnd = days[i]
		}
	}

	start := bestEnd.AddDate(0, 0, -(best - 1))
	return Streak{
		Longest:    best,
		Start:      start.Format("2006-01-02"),
		End:        bestEnd.Format("2006-01-02"),
		ActiveDays: len(days),
	}
}
