// Package recap derives a year-in-review summary from one account's
// posts. Every facet is computed independently from the same filtered
// post set, so analyzers have no ordering constraints among themselves.
package recap

import (
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// Version tags generated recaps. Cached entries carrying a different
// version are regenerated regardless of their TTL. Bump it whenever a
// facet changes shape or meaning.
const Version = "v2"

// Recap is the complete summary for one (handle, year). Immutable once
// assembled.
type Recap struct {
	Handle       string         `json:"handle"`
	Year         int            `json:"year"`
	Profile      ProfileCard    `json:"profile"`
	Stats        Totals         `json:"stats"`
	TopPost      *PostRef       `json:"topPost,omitempty"`
	MostLiked    *PostRef       `json:"mostLiked,omitempty"`
	MostReposted *PostRef       `json:"mostReposted,omitempty"`
	MostReplied  *PostRef       `json:"mostReplied,omitempty"`
	FirstPost    *PostRef       `json:"firstPost,omitempty"`
	Patterns     Patterns       `json:"patterns"`
	Streak       Streak         `json:"streak"`
	TopFans      []Fan          `json:"topFans,omitempty"`
	Topics       Topics         `json:"topics"`
	Emojis       Emojis         `json:"emojis"`
	Media        Media          `json:"media"`
	Links        Links          `json:"links"`
	Threads      Threads        `json:"threads"`
	PosterType   Label          `json:"posterType"`
	PostingEra   Era            `json:"postingEra"`
	Milestones   []Milestone    `json:"milestones,omitempty"`
	Timeline     Timeline       `json:"timeline"`
	Visuals      Visualizations `json:"visualizations"`
	Truncated    bool           `json:"truncated"`
	Version      string         `json:"version"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}

// ProfileCard is the account snapshot shown on the recap cover.
type ProfileCard struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Followers   int    `json:"followers"`
	Follows     int    `json:"follows"`
	Posts       int    `json:"posts"`
}

// ProfileCardOf maps an API profile onto the recap facet.
func ProfileCardOf(p bsky.Profile) ProfileCard {
	return ProfileCard{
		DID:         p.DID,
		Handle:      p.Handle,
		DisplayName: p.DisplayName,
		Avatar:      p.Avatar,
		Followers:   p.FollowersCount,
		Follows:     p.FollowsCount,
		Posts:       p.PostsCount,
	}
}

// PostRef is the rendered reference to one concrete post.
type PostRef struct {
	URI       string    `json:"uri"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Reposts   int       `json:"reposts"`
	Replies   int       `json:"replies"`
}

func refOf(p bsky.Post) *PostRef {
	return &PostRef{
		URI:       p.URI,
		Text:      p.Text,
		CreatedAt: p.CreatedAt,
		Likes:     p.LikeCount,
		Reposts:   p.RepostCount,
		Replies:   p.ReplyCount,
	}
}

// Label is a classifier verdict with its display description.
type Label struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
