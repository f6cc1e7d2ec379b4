package bsky

import "strings"

// Wire-format structs for the XRPC responses we consume.

type profileResponse struct {
	DID            string `json:"did"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"displayName"`
	Description    string `json:"description"`
	Avatar         string `json:"avatar"`
	FollowersCount int    `json:"followersCount"`
	FollowsCount   int    `json:"followsCount"`
	PostsCount     int    `json:"postsCount"`
	CreatedAt      string `json:"createdAt"`
}

type feedResponse struct {
	Feed   []feedItem `json:"feed"`
	Cursor string     `json:"cursor"`
}

type feedItem struct {
	Post   feedPost  `json:"post"`
	Reason *struct{} `json:"reason,omitempty"`
}

type feedPost struct {
	URI         string     `json:"uri"`
	Author      feedAuthor `json:"author"`
	Record      feedRecord `json:"record"`
	Embed       *feedEmbed `json:"embed"`
	LikeCount   int        `json:"likeCount"`
	RepostCount int        `json:"repostCount"`
	ReplyCount  int        `json:"replyCount"`
}

type feedAuthor struct {
	DID    string `json:"did"`
	Handle string `json:"handle"`
}

type feedRecord struct {
	Text      string    `json:"text"`
	CreatedAt string    `json:"createdAt"`
	Reply     *struct{} `json:"reply,omitempty"`
}

type feedEmbed struct {
	Type     string `json:"$type"`
	External *struct {
		URI string `json:"uri"`
	} `json:"external"`
	Media *feedEmbed `json:"media"` // recordWithMedia nests the media embed
}

type likesResponse struct {
	Likes []struct {
		Actor wireActor `json:"actor"`
	} `json:"likes"`
	Cursor string `json:"cursor"`
}

type repostedByResponse struct {
	RepostedBy []wireActor `json:"repostedBy"`
	Cursor     string      `json:"cursor"`
}

type wireActor struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

func (a wireActor) toActor() Actor {
	return Actor{
		DID:         a.DID,
		Handle:      a.Handle,
		DisplayName: a.DisplayName,
		Avatar:      a.Avatar,
	}
}

func (p feedPost) toPost() Post {
	kind, links := classifyEmbed(p.Embed)
	return Post{
		URI:         p.URI,
		AuthorDID:   p.Author.DID,
		Text:        p.Record.Text,
		CreatedAt:   parseTime(p.Record.CreatedAt),
		LikeCount:   p.LikeCount,
		RepostCount: p.RepostCount,
		ReplyCount:  p.ReplyCount,
		IsReply:     p.Record.Reply != nil,
		Embed:       kind,
		Links:       links,
	}
}

func classifyEmbed(e *feedEmbed) (EmbedKind, []string) {
	if e == nil {
		return EmbedNone, nil
	}
	switch {
	case strings.Contains(e.Type, "embed.images"):
		return EmbedImage, nil
	case strings.Contains(e.Type, "embed.video"):
		return EmbedVideo, nil
	case strings.Contains(e.Type, "embed.external"):
		if e.External != nil && e.External.URI != "" {
			return EmbedExternal, []string{e.External.URI}
		}
		return EmbedExternal, nil
	case strings.Contains(e.Type, "embed.recordWithMedia"):
		return classifyEmbed(e.Media)
	default:
		return EmbedNone, nil
	}
}
