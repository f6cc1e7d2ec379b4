package recap

import (
	"math"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// Totals aggregates raw engagement over the year's posts.
type Totals struct {
	Posts           int `json:"posts"`
	Likes           int `json:"likes"`
	Reposts         int `json:"reposts"`
	Replies         int `json:"replies"`
	TotalEngagement int `json:"totalEngagement"`
	AvgEngagement   int `json:"avgEngagement"` // rounded per-post average, 0 for no posts
}

// ComputeTotals sums engagement counts over the post set.
func ComputeTotals(posts []bsky.Post) Totals {
	var t Totals
	t.Posts = len(posts)
	for _, p := range posts {
		t.Likes += p.LikeCount
		t.Reposts += p.RepostCount
		t.Replies += p.ReplyCount
	}
	t.TotalEngagement = t.Likes + t.Reposts + t.Replies
	if t.Posts > 0 {
		t.AvgEngagement = int(math.Round(float64(t.TotalEngagement) / float64(t.Posts)))
	}
	return t
}
