package recap

import (
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// Bucket is the arg-max bucket of one engagement grouping: the local
// month, weekday, or hour whose posts averaged the most engagement.
type Bucket struct {
	Key string  `json:"key"`
	Avg float64 `json:"avg"` // mean engagement per post in the bucket
}

// Timeline reports when posting paid off best, per grouping,
// independently of the others.
type Timeline struct {
	BestMonth   Bucket `json:"bestMonth"`
	BestWeekday Bucket `json:"bestWeekday"`
	BestHour    Bucket `json:"bestHour"`
}

// ComputeTimeline averages raw engagement per post by local month,
// weekday, and hour and reports each grouping's best bucket. Ties
// resolve to the earliest calendar value. Empty input yields empty
// bucket keys.
func ComputeTimeline(posts []bsky.Post, offsetMinutes int) Timeline {
	var (
		monthSum, monthN     [12]int
		weekdaySum, weekdayN [7]int
		hourSum, hourN       [24]int
	)
	for _, p := range posts {
		lt := Localize(p.CreatedAt, offsetMinutes)
		e := p.Engagement()
		monthSum[int(lt.Month)-1] += e
		monthN[int(lt.Month)-1]++
		weekdaySum[int(lt.Weekday)] += e
		weekdayN[int(lt.Weekday)]++
		hourSum[lt.Hour] += e
		hourN[lt.Hour]++
	}

	var t Timeline
	if i, avg, ok := bestBucket(monthSum[:], monthN[:]); ok {
		t.BestMonth = Bucket{Key: time.Month(i + 1).String(), Avg: avg}
	}
	if i, avg, ok := bestBucket(weekdaySum[:], weekdayN[:]); ok {
		t.BestWeekday = Bucket{Key: time.Weekday(i).String(), Avg: avg}
	}
	if i, avg, ok := bestBucket(hourSum[:], hourN[:]); ok {
		t.BestHour = Bucket{Key: hourKey(i), Avg: avg}
	}
	return t
}

// bestBucket returns the index with the highest per-post average among
// buckets that saw any posts. ok is false when no bucket did.
func bestBucket(sums, counts []int) (int, float64, bool) {
	best, bestAvg, found := 0, 0.0, false
	for i := range sums {
		if counts[i] == 0 {
			continue
		}
		avg := float64(sums[i]) / float64(counts[i])
		if !found || avg > bestAvg {
			best, bestAvg, found = i, avg, true
		}
	}
	return best, bestAvg, found
}

func hourKey(h int) string {
	return time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("15:00")
}
