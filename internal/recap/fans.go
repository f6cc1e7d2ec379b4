package recap

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

const (
	fanSamplePosts  = 50 // top posts whose edges we sample
	fanEdgePageSize = 100
	fanEdgePages    = 3 // per edge kind per post
	fanTopN         = 5

	likePoints   = 1
	repostPoints = 2 // a repost is a stronger signal than a like
)

// EdgeSource lists the accounts behind a post's like and repost edges.
type EdgeSource interface {
	Likes(ctx context.Context, uri string, limit int, cursor string) ([]bsky.Actor, string, error)
	RepostedBy(ctx context.Context, uri string, limit int, cursor string) ([]bsky.Actor, string, error)
}

// Fan is one leaderboard entry: an account ranked by how often it
// engaged with the subject's top posts.
type Fan struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Likes       int    `json:"likes"`
	Reposts     int    `json:"reposts"`
	Score       int    `json:"score"`
}

// SampleFans builds an approximate fan leaderboard from the top posts
// by raw engagement. Posts are sampled sequentially; for each post the
// like and repost edges are fetched concurrently, so at most two
// requests are in flight at once. A failed edge fetch of either kind
// zeroes that post's whole contribution and the sampling continues;
// counting only the kind that succeeded would skew the leaderboard
// toward whichever edge happened to load.
func SampleFans(ctx context.Context, src EdgeSource, posts []bsky.Post, selfDID string) []Fan {
	sample := topByRawEngagement(posts, fanSamplePosts)

	type tally struct {
		actor   bsky.Actor
		likes   int
		reposts int
		order   int // first-encounter position, stable tie-break
	}
	tallies := make(map[string]*tally)
	record := func(a bsky.Actor, likes, reposts int) {
		if a.DID == "" || a.DID == selfDID {
			return
		}
		t, ok := tallies[a.DID]
		if !ok {
			t = &tally{actor: a, order: len(tallies)}
			tallies[a.DID] = t
		}
		t.likes += likes
		t.reposts += reposts
	}

	for _, p := range sample {
		var likers, reposters []bsky.Actor
		var likeErr, repostErr error

		done := make(chan struct{})
		go func() {
			defer close(done)
			reposters, repostErr = fetchEdges(ctx, src.RepostedBy, p.URI)
		}()
		likers, likeErr = fetchEdges(ctx, src.Likes, p.URI)
		<-done

		if likeErr != nil || repostErr != nil {
			err := likeErr
			if err == nil {
				err = repostErr
			}
			slog.Warn("fan sampling: edge fetch failed, skipping post", "uri", p.URI, "err", err)
			continue
		}
		for _, a := range likers {
			record(a, 1, 0)
		}
		for _, a := range reposters {
			record(a, 0, 1)
		}
	}

	ranked := make([]*tally, 0, len(tallies))
	for _, t := range tallies {
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		si := likePoints*ranked[i].likes + repostPoints*ranked[i].reposts
		sj := likePoints*ranked[j].likes + repostPoints*ranked[j].reposts
		if si != sj {
			return si > sj
		}
		return ranked[i].order < ranked[j].order
	})
	if len(ranked) > fanTopN {
		ranked = ranked[:fanTopN]
	}

	fans := make([]Fan, 0, len(ranked))
	for _, t := range ranked {
		fans = append(fans, Fan{
			DID:         t.actor.DID,
			Handle:      t.actor.Handle,
			DisplayName: t.actor.DisplayName,
			Avatar:      t.actor.Avatar,
			Likes:       t.likes,
			Reposts:     t.reposts,
			Score:       likePoints*t.likes + repostPoints*t.reposts,
		})
	}
	return fans
}

type edgePage func(ctx context.Context, uri string, limit int, cursor string) ([]bsky.Actor, string, error)

// fetchEdges walks up to fanEdgePages pages of one edge kind.
func fetchEdges(ctx context.Context, page edgePage, uri string) ([]bsky.Actor, error) {
	var actors []bsky.Actor
	cursor := ""
	for i := 0; i < fanEdgePages; i++ {
		batch, next, err := page(ctx, uri, fanEdgePageSize, cursor)
		if err != nil {
			return nil, err
		}
		actors = append(actors, batch...)
		if next == "" {
			break
		}
		cursor = next
	}
	return actors, nil
}

// topByRawEngagement returns the n posts with the highest likes+reposts,
// ties keeping feed order.
func topByRawEngagement(posts []bsky.Post, n int) []bsky.Post {
	sample := make([]bsky.Post, len(posts))
	copy(sample, posts)
	sort.SliceStable(sample, func(i, j int) bool {
		return sample[i].LikeCount+sample[i].RepostCount > sample[j].LikeCount+sample[j].RepostCount
	})
	if len(sample) > n {
		sample = sample[:n]
	}
	return sample
}
