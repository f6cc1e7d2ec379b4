package recap

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

// Era is the posting-era verdict with the heuristic score behind it.
type Era struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

// ComputeEra scores posting habits on a 0-100 scale where long posts,
// hashtags, few emojis, and few replies all read as "older internet",
// then maps the score onto one of four era labels. Empty input lands in
// the youngest band.
func ComputeEra(posts []bsky.Post) Era {
	score := 0
	if len(posts) > 0 {
		var chars, hashtags, emojis, replies int
		for _, p := range posts {
			chars += utf8.RuneCountInString(p.Text)
			hashtags += strings.Count(p.Text, "#")
			emojis += len(extractEmojis(p.Text))
			if p.IsReply {
				replies++
			}
		}
		n := float64(len(posts))
		avgLen := float64(chars) / n
		hashtagDensity := float64(hashtags) / n
		emojiDensity := float64(emojis) / n
		replyRatio := float64(replies) / n

		switch {
		case avgLen >= 200:
			score += 30
		case avgLen >= 100:
			score += 20
		case avgLen >= 50:
			score += 10
		}
		switch {
		case hashtagDensity >= 0.5:
			score += 25
		case hashtagDensity >= 0.1:
			score += 15
		}
		// Inverted: the fewer emojis, the older the vintage.
		switch {
		case emojiDensity < 0.1:
			score += 25
		case emojiDensity < 0.5:
			score += 10
		}
		// Inverted: broadcast posting over reply culture.
		switch {
		case replyRatio < 0.2:
			score += 20
		case replyRatio < 0.5:
			score += 10
		}
	}

	switch {
	case score >= 70:
		return Era{Name: "Forum Elder", Description: "Long posts, hashtags, no emoji in sight. You learned to type on a real keyboard.", Score: score}
	case score >= 50:
		return Era{Name: "Blog Era Veteran", Description: "You write paragraphs in a short-form world.", Score: score}
	case score >= 30:
		return Era{Name: "Timeline Native", Description: "Fluent in both essays and reaction emoji.", Score: score}
	default:
		return Era{Name: "New School", Description: "Short, reactive, emoji-forward. Born scrolling.", Score: score}
	}
}
