package recap

import (
	"testing"
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

func TestTopByEngagement_RepostsWeighDouble(t *testing.T) {
	posts := []bsky.Post{
		engagedPost("likes", 10, 0, 0),  // score 10
		engagedPost("reposts", 0, 6, 0), // score 12
	}
	top := TopByEngagement(posts)
	if top == nil || top.URI != "reposts" {
		t.Fatalf("top = %+v, want the repost-heavy post", top)
	}
}

func TestTopByEngagement_TieKeepsFirst(t *testing.T) {
	posts := []bsky.Post{
		engagedPost("first", 5, 0, 0),
		engagedPost("second", 5, 0, 0),
	}
	if top := TopByEngagement(posts); top.URI != "first" {
		t.Errorf("tie broke to %q, want first-encountered", top.URI)
	}
}

func TestTopBySingleMetric_Independent(t *testing.T) {
	posts := []bsky.Post{
		engagedPost("liked", 100, 0, 0),
		engagedPost("reposted", 0, 50, 0),
		engagedPost("replied", 0, 0, 30),
	}

	if got := TopByLikes(posts); got.URI != "liked" {
		t.Errorf("most liked = %q, want liked", got.URI)
	}
	if got := TopByReposts(posts); got.URI != "reposted" {
		t.Errorf("most reposted = %q, want reposted", got.URI)
	}
	if got := TopByReplies(posts); got.URI != "replied" {
		t.Errorf("most replied = %q, want replied", got.URI)
	}
}

func TestTopPosts_Empty(t *testing.T) {
	if TopByEngagement(nil) != nil || TopByLikes(nil) != nil || FirstPost(nil) != nil {
		t.Error("empty set must yield nil top posts")
	}
}

func TestFirstPost(t *testing.T) {
	posts := []bsky.Post{
		datedPost(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		datedPost(time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)),
		datedPost(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
	}
	first := FirstPost(posts)
	if first == nil || first.CreatedAt.Month() != time.January {
		t.Fatalf("first = %+v, want the January post", first)
	}
}
