package bsky

import "time"

// EmbedKind classifies what a post embeds, if anything.
type EmbedKind string

const (
	EmbedNone     EmbedKind = "none"
	EmbedImage    EmbedKind = "image"
	EmbedVideo    EmbedKind = "video"
	EmbedExternal EmbedKind = "external"
)

// Post is a single post from an account's author feed. Engagement counts
// are totals as of fetch time, not point-in-time snapshots.
type Post struct {
	URI         string
	AuthorDID   string
	Text        string
	CreatedAt   time.Time // UTC
	LikeCount   int
	RepostCount int
	ReplyCount  int
	IsReply     bool
	Embed       EmbedKind
	Links       []string // external URLs carried by the embed, if any
}

// Engagement is the combined raw interaction count for a post.
func (p Post) Engagement() int {
	return p.LikeCount + p.RepostCount + p.ReplyCount
}

// Profile is an account snapshot at fetch time.
type Profile struct {
	DID            string
	Handle         string
	DisplayName    string
	Description    string
	Avatar         string
	FollowersCount int
	FollowsCount   int
	PostsCount     int
	CreatedAt      time.Time
}

// Actor identifies an account seen on a like or repost edge.
type Actor struct {
	DID         string
	Handle      string
	DisplayName string
	Avatar      string
}

// FeedPage is one page of an author feed walk. An empty Cursor means the
// feed is exhausted.
type FeedPage struct {
	Posts  []Post
	Cursor string
}
