package recap

import (
	"testing"
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

func timedEngaged(t time.Time, likes int) bsky.Post {
	p := datedPost(t)
	p.LikeCount = likes
	return p
}

func TestComputeTimeline_AveragesNotTotals(t *testing.T) {
	// March has more total engagement, April the better per-post average.
	posts := []bsky.Post{
		timedEngaged(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), 10),
		timedEngaged(time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC), 10),
		timedEngaged(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), 1),
		timedEngaged(time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC), 12),
	}

	tl := ComputeTimeline(posts, 0)

	if tl.BestMonth.Key != "April" {
		t.Errorf("best month = %q, want April", tl.BestMonth.Key)
	}
	if tl.BestMonth.Avg != 12 {
		t.Errorf("best month avg = %v, want 12", tl.BestMonth.Avg)
	}
	if tl.BestHour.Key != "18:00" {
		t.Errorf("best hour = %q, want 18:00", tl.BestHour.Key)
	}
}

func TestComputeTimeline_SkipsEmptyBuckets(t *testing.T) {
	posts := []bsky.Post{
		timedEngaged(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), 0),
	}
	tl := ComputeTimeline(posts, 0)
	if tl.BestMonth.Key != "June" {
		t.Errorf("best month = %q, want the only populated bucket", tl.BestMonth.Key)
	}
	if tl.BestMonth.Avg != 0 {
		t.Errorf("avg = %v, want 0 for a zero-engagement bucket", tl.BestMonth.Avg)
	}
}

func TestComputeTimeline_TieBreaksToEarliest(t *testing.T) {
	posts := []bsky.Post{
		timedEngaged(time.Date(2025, 8, 1, 20, 0, 0, 0, time.UTC), 5),
		timedEngaged(time.Date(2025, 2, 1, 7, 0, 0, 0, time.UTC), 5),
	}
	tl := ComputeTimeline(posts, 0)
	if tl.BestMonth.Key != "February" {
		t.Errorf("best month = %q, want the earlier month on a tie", tl.BestMonth.Key)
	}
	if tl.BestHour.Key != "07:00" {
		t.Errorf("best hour = %q, want the earlier hour on a tie", tl.BestHour.Key)
	}
}

func TestComputeTimeline_Empty(t *testing.T) {
	tl := ComputeTimeline(nil, 0)
	if tl.BestMonth.Key != "" || tl.BestWeekday.Key != "" || tl.BestHour.Key != "" {
		t.Errorf("empty input = %+v, want empty bucket keys", tl)
	}
}
