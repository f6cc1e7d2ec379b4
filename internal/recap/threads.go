package recap

import "github.com/ppiankov/skyrecap/internal/bsky"

// Threads reports how much conversation the account started: a thread
// starter is a top-level post that drew at least one reply.
type Threads struct {
	Starters   int      `json:"starters"`
	AvgReplies float64  `json:"avgReplies"` // mean replies per starter
	Biggest    *PostRef `json:"biggest,omitempty"`
	Style      Label    `json:"style"`
}

// threadRules classifies conversational style from the starter ratio
// (starters over all posts) and the mean replies per starter. Ordered,
// first match wins.
var threadRules = []struct {
	match func(starterRatio, avgReplies float64) bool
	label Label
}{
	{
		match: func(sr, ar float64) bool { return sr >= 0.3 && ar >= 10 },
		label: Label{Name: "Community Builder", Description: "You kept starting conversations and people kept showing up."},
	},
	{
		match: func(sr, ar float64) bool { return ar >= 10 },
		label: Label{Name: "Discussion Magnet", Description: "When you posted, the replies poured in."},
	},
	{
		match: func(sr, ar float64) bool { return sr >= 0.3 },
		label: Label{Name: "Conversation Starter", Description: "You threw out plenty of openers."},
	},
	{
		match: func(sr, ar float64) bool { return sr >= 0.1 && ar >= 3 },
		label: Label{Name: "Engaged Poster", Description: "A steady trickle of threads with real back-and-forth."},
	},
	{
		match: func(sr, ar float64) bool { return sr > 0 },
		label: Label{Name: "Occasional Threader", Description: "Now and then a post of yours grew legs."},
	},
	{
		match: func(sr, ar float64) bool { return true },
		label: Label{Name: "Quiet Observer", Description: "Your posts stayed solo this year."},
	},
}

// ComputeThreads finds thread starters, the single biggest thread, and
// the conversational style label.
func ComputeThreads(posts []bsky.Post) Threads {
	var (
		t            Threads
		totalReplies int
		biggest      *bsky.Post
	)
	for i := range posts {
		p := posts[i]
		if p.IsReply || p.ReplyCount == 0 {
			continue
		}
		t.Starters++
		totalReplies += p.ReplyCount
		if biggest == nil || p.ReplyCount > biggest.ReplyCount {
			biggest = &posts[i]
		}
	}

	if biggest != nil {
		t.Biggest = refOf(*biggest)
	}
	if t.Starters > 0 {
		t.AvgReplies = float64(totalReplies) / float64(t.Starters)
	}

	starterRatio := 0.0
	if len(posts) > 0 {
		starterRatio = float64(t.Starters) / float64(len(posts))
	}
	for _, rule := range threadRules {
		if rule.match(starterRatio, t.AvgReplies) {
			t.Style = rule.label
			break
		}
	}
	return t
}
