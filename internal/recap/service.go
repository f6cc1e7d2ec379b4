package recap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
	"github.com/ppiankov/skyrecap/internal/cache"
	"github.com/ppiankov/skyrecap/internal/fetcher"
)

// Feed is everything the pipeline needs from the Bluesky API.
type Feed interface {
	GetProfile(ctx context.Context, actor string) (bsky.Profile, error)
	AuthorFeedPage(ctx context.Context, actor string, limit int, cursor string) (bsky.FeedPage, error)
	EdgeSource
}

// Service assembles recaps, consulting the cache gateway before and
// after generation. Cache failures degrade to cache-less operation.
type Service struct {
	feed  Feed
	cache cache.Gateway
	ttl   time.Duration
}

// NewService wires a recap service. A nil gateway disables caching.
func NewService(feed Feed, gw cache.Gateway, ttl time.Duration) (*Service, error) {
	if feed == nil {
		return nil, errors.New("feed is required")
	}
	if gw == nil {
		gw = cache.NewMemory()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{feed: feed, cache: gw, ttl: ttl}, nil
}

// NormalizeHandle trims whitespace, strips one leading @, and
// lowercases. Cache lookups and generation must agree on the key, so
// every entry point funnels through here first.
func NormalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	return strings.ToLower(handle)
}

// GetOrGenerate returns the cached recap for (handle, year) when it is
// fresh and version-compatible, generating and re-caching otherwise.
func (s *Service) GetOrGenerate(ctx context.Context, handle string, year, offsetMinutes int) (*Recap, error) {
	handle = NormalizeHandle(handle)
	if handle == "" {
		return nil, errors.New("handle is required")
	}

	if r := s.lookup(ctx, handle, year); r != nil {
		return r, nil
	}
	return s.generate(ctx, handle, year, offsetMinutes)
}

// Regenerate always generates a fresh recap and overwrites the cache.
func (s *Service) Regenerate(ctx context.Context, handle string, year, offsetMinutes int) (*Recap, error) {
	handle = NormalizeHandle(handle)
	if handle == "" {
		return nil, errors.New("handle is required")
	}
	return s.generate(ctx, handle, year, offsetMinutes)
}

// lookup returns a usable cached recap or nil. Every failure path logs
// and falls through to regeneration.
func (s *Service) lookup(ctx context.Context, handle string, year int) *Recap {
	entry, err := s.cache.Get(ctx, handle, year)
	if err != nil {
		slog.Warn("cache read failed", "handle", handle, "year", year, "err", err)
		return nil
	}
	if entry == nil || entry.Expired(time.Now()) {
		return nil
	}

	var r Recap
	if err := json.Unmarshal(entry.Data, &r); err != nil {
		slog.Warn("cache entry undecodable", "handle", handle, "year", year, "err", err)
		return nil
	}
	if r.Version != Version {
		// Schema drift: regenerate even though the TTL has not passed.
		slog.Info("cache entry version mismatch", "handle", handle, "have", r.Version, "want", Version)
		return nil
	}
	return &r
}

func (s *Service) generate(ctx context.Context, handle string, year, offsetMinutes int) (*Recap, error) {
	profile, err := s.feed.GetProfile(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", handle, err)
	}

	result, err := fetcher.New(s.feed).YearPosts(ctx, handle, year)
	if err != nil {
		return nil, fmt.Errorf("fetch %d posts for %s: %w", year, handle, err)
	}

	r := Assemble(ctx, s.feed, profile, result, handle, year, offsetMinutes)
	s.store(ctx, handle, year, r)
	return r, nil
}

func (s *Service) store(ctx context.Context, handle string, year int, r *Recap) {
	data, err := json.Marshal(r)
	if err != nil {
		slog.Warn("cache encode failed", "handle", handle, "err", err)
		return
	}
	expiresAt := time.Now().Add(s.ttl)
	if err := s.cache.Put(ctx, handle, year, data, expiresAt); err != nil {
		slog.Warn("cache write failed", "handle", handle, "year", year, "err", err)
	}
}

// Assemble runs every analyzer over the fetched post set and merges the
// facets into one versioned Recap. Analyzers only see raw posts and the
// profile; no facet feeds another beyond the shared streak/engagement
// inputs the archetype cascade gates on.
func Assemble(ctx context.Context, edges EdgeSource, profile bsky.Profile, fetched fetcher.Result, handle string, year, offsetMinutes int) *Recap {
	posts := fetched.Posts

	totals := ComputeTotals(posts)
	streak := ComputeStreak(posts, offsetMinutes)
	patterns, visuals := ComputePatterns(posts, offsetMinutes)

	return &Recap{
		Handle:       handle,
		Year:         year,
		Profile:      ProfileCardOf(profile),
		Stats:        totals,
		TopPost:      TopByEngagement(posts),
		MostLiked:    TopByLikes(posts),
		MostReposted: TopByReposts(posts),
		MostReplied:  TopByReplies(posts),
		FirstPost:    FirstPost(posts),
		Patterns:     patterns,
		Streak:       streak,
		TopFans:      SampleFans(ctx, edges, posts, profile.DID),
		Topics:       ComputeTopics(posts),
		Emojis:       ComputeEmojis(posts),
		Media:        ComputeMedia(posts),
		Links:        ComputeLinks(posts),
		Threads:      ComputeThreads(posts),
		PosterType:   ClassifyPoster(posts, streak.Longest, totals.AvgEngagement, offsetMinutes),
		PostingEra:   ComputeEra(posts),
		Milestones:   ComputeMilestones(posts),
		Timeline:     ComputeTimeline(posts, offsetMinutes),
		Visuals:      visuals,
		Truncated:    fetched.Truncated,
		Version:      Version,
		GeneratedAt:  time.Now().UTC(),
	}
}
