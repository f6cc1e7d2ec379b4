// Package fetcher walks a cursor-paginated author feed and collects the
// posts belonging to one calendar year. The walk is bounded: it stops
// early once the target year is clearly behind the cursor, and it never
// exceeds a hard page cap.
package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

const (
	// PageSize is the number of feed items requested per page.
	PageSize = 100

	// MaxIterations caps the walk for extremely active accounts.
	// Hitting it marks the result as truncated.
	MaxIterations = 100

	// emptyPageWindow is how many consecutive pages without a
	// target-year post we tolerate before stopping early. Short
	// inactive stretches inside the year must not end the walk.
	emptyPageWindow = 5
)

// PageSource provides one page of an author feed per call.
type PageSource interface {
	AuthorFeedPage(ctx context.Context, actor string, limit int, cursor string) (bsky.FeedPage, error)
}

// Result is the outcome of one year walk.
type Result struct {
	Posts      []bsky.Post // target-year posts, feed order (newest first)
	Iterations int
	Truncated  bool // hit MaxIterations with feed left unread
}

// Fetcher collects one year of posts from a PageSource.
type Fetcher struct {
	src      PageSource
	pageSize int
	maxIter  int
}

// New creates a Fetcher with the default page size and iteration cap.
func New(src PageSource) *Fetcher {
	return &Fetcher{src: src, pageSize: PageSize, maxIter: MaxIterations}
}

// state is the mutable page-walk record, owned by one YearPosts call.
type state struct {
	posts            []bsky.Post
	cursor           string
	iterations       int
	consecutiveEmpty int
	seenTargetYear   bool
}

// YearPosts walks the actor's feed newest-first and returns every post
// whose timestamp falls inside the target year. Any failed page aborts
// the whole walk.
func (f *Fetcher) YearPosts(ctx context.Context, actor string, year int) (Result, error) {
	if actor == "" {
		return Result{}, errors.New("actor is required")
	}
	if year < 1000 || year > 9999 {
		return Result{}, fmt.Errorf("invalid year %d", year)
	}

	window := NewWindow(year)
	st := state{}

	for st.iterations < f.maxIter {
		page, err := f.src.AuthorFeedPage(ctx, actor, f.pageSize, st.cursor)
		if err != nil {
			return Result{}, fmt.Errorf("page %d: %w", st.iterations+1, err)
		}
		st.iterations++

		matched := 0
		pageHasOlder := false
		for _, post := range page.Posts {
			switch {
			case window.Contains(post.CreatedAt):
				st.posts = append(st.posts, post)
				matched++
			case window.Before(post.CreatedAt):
				pageHasOlder = true
			default:
				// Newer than the window; newest-first ordering
				// means these precede the year. Drop them.
			}
		}

		if matched > 0 {
			st.seenTargetYear = true
			st.consecutiveEmpty = 0
		} else {
			st.consecutiveEmpty++
		}
		// Early stop: the year has been seen, several pages in a row
		// added nothing, and this page already reached older history.
		if st.seenTargetYear && st.consecutiveEmpty >= emptyPageWindow && pageHasOlder {
			return Result{Posts: st.posts, Iterations: st.iterations}, nil
		}

		if page.Cursor == "" {
			return Result{Posts: st.posts, Iterations: st.iterations}, nil
		}
		st.cursor = page.Cursor
	}

	return Result{Posts: st.posts, Iterations: st.iterations, Truncated: true}, nil
}
