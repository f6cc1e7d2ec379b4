package recap

import "github.com/ppiankov/skyrecap/internal/bsky"

// engagementScore weights reposts double: a repost is a stronger signal
// than a like or reply. The fan leaderboard uses the same weighting.
func engagementScore(p bsky.Post) int {
	return p.LikeCount + 2*p.RepostCount + p.ReplyCount
}

// TopByEngagement returns the post with the highest weighted engagement
// score, or nil for an empty set. Ties keep the first-encountered post.
func TopByEngagement(posts []bsky.Post) *PostRef {
	return maxBy(posts, engagementScore)
}

// TopByLikes returns the most-liked post, or nil for an empty set.
func TopByLikes(posts []bsky.Post) *PostRef {
	return maxBy(posts, func(p bsky.Post) int { return p.LikeCount })
}

// TopByReposts returns the most-reposted post, or nil for an empty set.
func TopByReposts(posts []bsky.Post) *PostRef {
	return maxBy(posts, func(p bsky.Post) int { return p.RepostCount })
}

// TopByReplies returns the most-replied post, or nil for an empty set.
func TopByReplies(posts []bsky.Post) *PostRef {
	return maxBy(posts, func(p bsky.Post) int { return p.ReplyCount })
}

// FirstPost returns the chronologically earliest post of the set, or
// nil when the set is empty.
func FirstPost(posts []bsky.Post) *PostRef {
	if len(posts) == 0 {
		return nil
	}
	first := posts[0]
	for _, p := range posts[1:] {
		if p.CreatedAt.Before(first.CreatedAt) {
			first = p
		}
	}
	return refOf(first)
}

func maxBy(posts []bsky.Post, score func(bsky.Post) int) *PostRef {
	if len(posts) == 0 {
		return nil
	}
	best := posts[0]
	bestScore := score(best)
	for _, p := range posts[1:] {
		if s := score(p); s > bestScore {
			best, bestScore = p, s
		}
	}
	return refOf(best)
}
