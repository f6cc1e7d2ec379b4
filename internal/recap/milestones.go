package recap

import (
	"sort"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// milestoneThresholds are the post-count marks worth celebrating, in
// ascending order.
var milestoneThresholds = []int{100, 500, 1000, 2500, 5000, 10000}

// Milestone marks the account's Nth post of the year.
type Milestone struct {
	Number int     `json:"number"`
	Post   PostRef `json:"post"`
}

// ComputeMilestones sorts posts chronologically and picks the post at
// each threshold position the year actually reached. The very first
// post is always milestone #1.
func ComputeMilestones(posts []bsky.Post) []Milestone {
	if len(posts) == 0 {
		return nil
	}

	ordered := make([]bsky.Post, len(posts))
	copy(ordered, posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	milestones := []Milestone{{Number: 1, Post: *refOf(ordered[0])}}
	for _, n := range milestoneThresholds {
		if n > len(ordered) {
			break
		}
		milestones = append(milestones, Milestone{Number: n, Post: *refOf(ordered[n-1])})
	}
	return milestones
}
