// Package bsky is a minimal client for the Bluesky XRPC API: session
// auth, author-feed pagination, profile lookup, and like/repost edge
// listing. Only the fields the recap pipeline consumes are decoded.
package bsky

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultService = "https://bsky.social"

	clientTimeout = 30 * time.Second
	userAgent     = "skyrecap/1.0"
)

// Client talks to a Bluesky PDS over XRPC. Call Login before any
// authenticated method.
type Client struct {
	service    string
	identifier string
	password   string
	client     *http.Client
	accessJwt  string
}

// New creates a client for the given service. Credentials are required;
// an app password is expected, not the account password.
func New(service, identifier, password string) (*Client, error) {
	if service == "" {
		service = DefaultService
	}
	if identifier == "" {
		return nil, errors.New("bsky: identifier is required")
	}
	if password == "" {
		return nil, errors.New("bsky: app password is required")
	}
	return &Client{
		service:    service,
		identifier: identifier,
		password:   password,
		client:     &http.Client{Timeout: clientTimeout},
	}, nil
}

// Login exchanges the credentials for a session token.
func (c *Client) Login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"identifier": c.identifier,
		"password":   c.password,
	})
	if err != nil {
		return fmt.Errorf("encode session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.service+"/xrpc/com.atproto.server.createSession", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("create session: status %d", resp.StatusCode)
	}

	var session struct {
		AccessJwt string `json:"accessJwt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	if session.AccessJwt == "" {
		return errors.New("create session: empty access token")
	}

	c.accessJwt = session.AccessJwt
	return nil
}

// GetProfile fetches the profile snapshot for an actor (handle or DID).
func (c *Client) GetProfile(ctx context.Context, actor string) (Profile, error) {
	if actor == "" {
		return Profile{}, errors.New("actor is required")
	}

	q := url.Values{"actor": {actor}}
	var raw profileResponse
	if err := c.get(ctx, "app.bsky.actor.getProfile", q, &raw); err != nil {
		return Profile{}, fmt.Errorf("get profile %s: %w", actor, err)
	}

	return Profile{
		DID:            raw.DID,
		Handle:         raw.Handle,
		DisplayName:    raw.DisplayName,
		Description:    raw.Description,
		Avatar:         raw.Avatar,
		FollowersCount: raw.FollowersCount,
		FollowsCount:   raw.FollowsCount,
		PostsCount:     raw.PostsCount,
		CreatedAt:      parseTime(raw.CreatedAt),
	}, nil
}

// AuthorFeedPage fetches one page of an actor's feed, newest first.
// Reposts of other accounts' content are dropped; only the actor's own
// posts and replies are returned.
func (c *Client) AuthorFeedPage(ctx context.Context, actor string, limit int, cursor string) (FeedPage, error) {
	if actor == "" {
		return FeedPage{}, errors.New("actor is required")
	}

	q := url.Values{
		"actor": {actor},
		"limit": {strconv.Itoa(limit)},
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	var raw feedResponse
	if err := c.get(ctx, "app.bsky.feed.getAuthorFeed", q, &raw); err != nil {
		return FeedPage{}, fmt.Errorf("get author feed %s: %w", actor, err)
	}

	page := FeedPage{Cursor: raw.Cursor}
	for _, item := range raw.Feed {
		if item.Reason != nil {
			continue // a repost by the actor, authored elsewhere
		}
		page.Posts = append(page.Posts, item.Post.toPost())
	}
	return page, nil
}

// Likes fetches one page of accounts that liked the given post URI.
func (c *Client) Likes(ctx context.Context, uri string, limit int, cursor string) ([]Actor, string, error) {
	q := url.Values{
		"uri":   {uri},
		"limit": {strconv.Itoa(limit)},
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	var raw likesResponse
	if err := c.get(ctx, "app.bsky.feed.getLikes", q, &raw); err != nil {
		return nil, "", fmt.Errorf("get likes: %w", err)
	}

	actors := make([]Actor, 0, len(raw.Likes))
	for _, like := range raw.Likes {
		actors = append(actors, like.Actor.toActor())
	}
	return actors, raw.Cursor, nil
}

// RepostedBy fetches one page of accounts that reposted the given post URI.
func (c *Client) RepostedBy(ctx context.Context, uri string, limit int, cursor string) ([]Actor, string, error) {
	q := url.Values{
		"uri":   {uri},
		"limit": {strconv.Itoa(limit)},
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	var raw repostedByResponse
	if err := c.get(ctx, "app.bsky.feed.getRepostedBy", q, &raw); err != nil {
		return nil, "", fmt.Errorf("get reposted by: %w", err)
	}

	actors := make([]Actor, 0, len(raw.RepostedBy))
	for _, a := range raw.RepostedBy {
		actors = append(actors, a.toActor())
	}
	return actors, raw.Cursor, nil
}

func (c *Client) get(ctx context.Context, method string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.service+"/xrpc/"+method+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.accessJwt != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC()
	}
	t, _ := time.Parse(time.RFC3339, value)
	return t.UTC()
}
