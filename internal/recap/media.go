package recap

import "github.com/ppiankov/skyrecap/internal/bsky"

// Media reports how much of the year was carried by images and video.
type Media struct {
	ImagePosts int   `json:"imagePosts"`
	VideoPosts int   `json:"videoPosts"`
	Style      Label `json:"style"`
}

// mediaRules is the ordered decision table for the media style label.
// Evaluated top to bottom, first match wins.
var mediaRules = []struct {
	match func(ratio float64, images, videos int) bool
	label Label
}{
	{
		match: func(ratio float64, images, videos int) bool {
			return ratio > 0.5 && videos > 0 && images > 2*videos || ratio > 0.5 && videos == 0
		},
		label: Label{Name: "Visual Storyteller", Description: "Most of your posts came with pictures."},
	},
	{
		match: func(ratio float64, images, videos int) bool {
			return ratio > 0.5 && videos > images
		},
		label: Label{Name: "Video Creator", Description: "Your year played out in moving pictures."},
	},
	{
		match: func(ratio float64, images, videos int) bool {
			return ratio > 0.5
		},
		label: Label{Name: "Multimedia Master", Description: "Photos, clips, you mixed it all."},
	},
	{
		match: func(ratio float64, images, videos int) bool {
			return ratio >= 0.2
		},
		label: Label{Name: "Balanced", Description: "A healthy mix of media and plain words."},
	},
	{
		match: func(ratio float64, images, videos int) bool { return true },
		label: Label{Name: "Text-only", Description: "Words were all you needed."},
	},
}

// ComputeMedia counts image and video posts and classifies the
// account's media style.
func ComputeMedia(posts []bsky.Post) Media {
	var m Media
	for _, p := range posts {
		switch p.Embed {
		case bsky.EmbedImage:
			m.ImagePosts++
		case bsky.EmbedVideo:
			m.VideoPosts++
		}
	}

	ratio := 0.0
	if len(posts) > 0 {
		ratio = float64(m.ImagePosts+m.VideoPosts) / float64(len(posts))
	}
	for _, rule := range mediaRules {
		if rule.match(ratio, m.ImagePosts, m.VideoPosts) {
			m.Style = rule.label
			break
		}
	}
	return m
}
