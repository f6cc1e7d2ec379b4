package recap

import (
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// textPost builds a minimal post with the given text, mid-year.
func textPost(text string) bsky.Post {
	return bsky.Post{
		URI:       "at://did:plc:self/app.bsky.feed.post/" + text[:min(8, len(text))],
		AuthorDID: "did:plc:self",
		Text:      text,
		CreatedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

// datedPost builds a post at the given UTC instant.
func datedPost(t time.Time) bsky.Post {
	return bsky.Post{
		URI:       "at://did:plc:self/app.bsky.feed.post/" + t.Format("20060102T150405"),
		AuthorDID: "did:plc:self",
		CreatedAt: t,
	}
}

// engagedPost builds a post with the given engagement counts.
func engagedPost(uri string, likes, reposts, replies int) bsky.Post {
	return bsky.Post{
		URI:         uri,
		AuthorDID:   "did:plc:self",
		CreatedAt:   time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		LikeCount:   likes,
		RepostCount: reposts,
		ReplyCount:  replies,
	}
}
