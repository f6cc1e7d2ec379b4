package recap

import "github.com/ppiankov/skyrecap/internal/bsky"

// posterTraits are the pre-computed ratios the archetype rules gate on.
type posterTraits struct {
	posts         int
	avgEngagement int
	streak        int
	replyRatio    float64 // replies over all posts
	linkRatio     float64 // external-embed posts over all posts
	mediaRatio    float64 // image/video posts over all posts
	nightRatio    float64 // local 22:00-03:59
	earlyRatio    float64 // local 05:00-08:59
}

// posterRules is the archetype priority cascade. The rules are not
// mutually exclusive; order is part of the contract. "Balanced" is the
// exhaustive fallback.
var posterRules = []struct {
	match func(t posterTraits) bool
	label Label
}{
	{
		match: func(t posterTraits) bool { return t.streak >= 30 },
		label: Label{Name: "Streak Master", Description: "A month or more of posting every single day."},
	},
	{
		match: func(t posterTraits) bool { return t.posts < 100 && t.avgEngagement >= 50 },
		label: Label{Name: "Quality Over Quantity", Description: "You posted rarely, and it landed every time."},
	},
	{
		match: func(t posterTraits) bool { return t.nightRatio >= 0.4 },
		label: Label{Name: "Night Owl", Description: "Your best posts went out after dark."},
	},
	{
		match: func(t posterTraits) bool { return t.earlyRatio >= 0.3 },
		label: Label{Name: "Early Bird", Description: "Up and posting before most people's alarms."},
	},
	{
		match: func(t posterTraits) bool { return t.replyRatio >= 0.6 },
		label: Label{Name: "Conversationalist", Description: "Most of your year was spent in other people's threads."},
	},
	{
		match: func(t posterTraits) bool { return t.linkRatio >= 0.4 },
		label: Label{Name: "Curator", Description: "You surfaced the good stuff for everyone else."},
	},
	{
		match: func(t posterTraits) bool { return t.avgEngagement >= 100 && t.posts >= 100 },
		label: Label{Name: "Thought Leader", Description: "High volume, high engagement, all year long."},
	},
	{
		match: func(t posterTraits) bool { return t.mediaRatio >= 0.5 },
		label: Label{Name: "Creator", Description: "You made things and showed them off."},
	},
	{
		match: func(t posterTraits) bool { return t.posts >= 1000 },
		label: Label{Name: "Power User", Description: "Four digits of posts. The feed never went quiet."},
	},
	{
		match: func(t posterTraits) bool { return true },
		label: Label{Name: "Balanced", Description: "A bit of everything, in healthy measure."},
	},
}

// ClassifyPoster runs the archetype cascade over the post set.
func ClassifyPoster(posts []bsky.Post, streak, avgEngagement, offsetMinutes int) Label {
	t := posterTraits{
		posts:         len(posts),
		avgEngagement: avgEngagement,
		streak:        streak,
	}

	if len(posts) > 0 {
		var replies, links, media, night, early int
		for _, p := range posts {
			if p.IsReply {
				replies++
			}
			switch p.Embed {
			case bsky.EmbedExternal:
				links++
			case bsky.EmbedImage, bsky.EmbedVideo:
				media++
			}
			hour := Localize(p.CreatedAt, offsetMinutes).Hour
			if hour >= 22 || hour < 4 {
				night++
			}
			if hour >= 5 && hour < 9 {
				early++
			}
		}
		n := float64(len(posts))
		t.replyRatio = float64(replies) / n
		t.linkRatio = float64(links) / n
		t.mediaRatio = float64(media) / n
		t.nightRatio = float64(night) / n
		t.earlyRatio = float64(early) / n
	}

	for _, rule := range posterRules {
		if rule.match(t) {
			return rule.label
		}
	}
	return Label{} // unreachable, the last rule always matches
}
