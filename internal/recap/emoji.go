package recap

import (
	"sort"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

const emojiMaxTop = 10

// EmojiCount is one ranked emoji with its frequency.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Emojis reports emoji usage across the year's posts.
type Emojis struct {
	Top   []EmojiCount `json:"top,omitempty"`
	Total int          `json:"total"`
}

// Symbol code points that live inside emoji blocks but read as plain
// text: check and ballot marks, zodiac signs, gender signs. Counting a
// ✓ as an emoji looks like a bug on the rendered card.
var emojiDenied = map[rune]bool{
	0x2603: true, // snowman (text presentation)
	0x2640: true, // female sign
	0x2642: true, // male sign
	0x2648: true, 0x2649: true, 0x264A: true, 0x264B: true, // zodiac
	0x264C: true, 0x264D: true, 0x264E: true, 0x264F: true,
	0x2650: true, 0x2651: true, 0x2652: true, 0x2653: true,
	0x2713: true, // check mark
	0x2714: true, // heavy check mark
	0x2717: true, // ballot x
	0x2718: true, // heavy ballot x
}

const (
	runeVS16     = 0xFE0F // variation selector: emoji presentation
	runeZWJ      = 0x200D
	runeSkinLow  = 0x1F3FB
	runeSkinHigh = 0x1F3FF
)

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func isEmojiBase(r rune) bool {
	if emojiDenied[r] {
		return false
	}
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols & pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended-A
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators (flags)
		return true
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r == 0x2B50 || r == 0x2B55: // star, heavy circle
		return true
	}
	return false
}

// extractEmojis returns each emoji sequence found in text. A base code
// point plus any attached variation selectors, skin-tone modifiers, and
// ZWJ-joined continuations counts as a single emoji. Two adjacent
// regional indicators form one flag.
func extractEmojis(text string) []string {
	runes := []rune(text)
	var out []string

	for i := 0; i < len(runes); i++ {
		if !isEmojiBase(runes[i]) {
			continue
		}
		if isRegionalIndicator(runes[i]) {
			start := i
			if i+1 < len(runes) && isRegionalIndicator(runes[i+1]) {
				i++
			}
			out = append(out, string(runes[start:i+1]))
			continue
		}
		start := i
		for i+1 < len(runes) {
			next := runes[i+1]
			switch {
			case next == runeVS16, next >= runeSkinLow && next <= runeSkinHigh:
				i++
			case next == runeZWJ && i+2 < len(runes) && isEmojiBase(runes[i+2]):
				i += 2
			default:
				goto done
			}
		}
	done:
		out = append(out, string(runes[start:i+1]))
	}
	return out
}

// ComputeEmojis tallies emoji sequences over the post set and returns
// the top ten by frequency, alphabetical on ties.
func ComputeEmojis(posts []bsky.Post) Emojis {
	counts := make(map[string]int)
	total := 0
	for _, p := range posts {
		for _, e := range extractEmojis(p.Text) {
			counts[e]++
			total++
		}
	}

	ranked := make([]EmojiCount, 0, len(counts))
	for e, n := range counts {
		ranked = append(ranked, EmojiCount{Emoji: e, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Emoji < ranked[j].Emoji
	})
	if len(ranked) > emojiMaxTop {
		ranked = ranked[:emojiMaxTop]
	}

	return Emojis{Top: ranked, Total: total}
}
