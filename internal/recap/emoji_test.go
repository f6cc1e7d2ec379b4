package recap

import (
	"testing"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

func TestComputeEmojis_Basic(t *testing.T) {
	posts := []bsky.Post{textPost("🔥🔥❤️ nice")}

	emojis := ComputeEmojis(posts)

	if emojis.Total != 3 {
		t.Errorf("total = %d, want 3", emojis.Total)
	}
	counts := map[string]int{}
	for _, e := range emojis.Top {
		counts[e.Emoji] = e.Count
	}
	if counts["🔥"] != 2 {
		t.Errorf("🔥 = %d, want 2", counts["🔥"])
	}
	if counts["❤️"] != 1 {
		t.Errorf("❤️ = %d, want 1", counts["❤️"])
	}
}

func TestComputeEmojis_DenyList(t *testing.T) {
	posts := []bsky.Post{textPost("done ✓ and ✔ and ♈ and ♀")}
	emojis := ComputeEmojis(posts)
	if emojis.Total != 0 {
		t.Errorf("total = %d, want 0 (deny-listed symbols)", emojis.Total)
	}
}

func TestComputeEmojis_AsciiIgnored(t *testing.T) {
	posts := []bsky.Post{textPost("abc 123 :-)")}
	if got := ComputeEmojis(posts).Total; got != 0 {
		t.Errorf("total = %d, want 0 for plain ASCII", got)
	}
}

func TestComputeEmojis_ZWJSequence(t *testing.T) {
	// Family emoji: four code points joined by ZWJ, one logical emoji.
	posts := []bsky.Post{textPost("👨‍👩‍👧 weekend")}
	emojis := ComputeEmojis(posts)
	if emojis.Total != 1 {
		t.Errorf("total = %d, want 1 for a ZWJ sequence", emojis.Total)
	}
}

func TestComputeEmojis_Flags(t *testing.T) {
	// A flag is two regional indicators that must count as one emoji,
	// not two broken halves.
	posts := []bsky.Post{textPost("🇺🇸🇺🇸 vs 🇯🇵")}
	emojis := ComputeEmojis(posts)

	if emojis.Total != 3 {
		t.Fatalf("total = %d, want 3", emojis.Total)
	}
	counts := map[string]int{}
	for _, e := range emojis.Top {
		counts[e.Emoji] = e.Count
	}
	if counts["🇺🇸"] != 2 {
		t.Errorf("🇺🇸 = %d, want 2", counts["🇺🇸"])
	}
	if counts["🇯🇵"] != 1 {
		t.Errorf("🇯🇵 = %d, want 1", counts["🇯🇵"])
	}
}

func TestComputeEmojis_RankingAndCap(t *testing.T) {
	posts := []bsky.Post{
		textPost("😀😀😀"),
		textPost("🎉🎉"),
		textPost("🚀"),
	}
	emojis := ComputeEmojis(posts)
	if len(emojis.Top) != 3 {
		t.Fatalf("top = %v, want 3 entries", emojis.Top)
	}
	if emojis.Top[0].Emoji != "😀" || emojis.Top[0].Count != 3 {
		t.Errorf("top[0] = %+v, want 😀×3", emojis.Top[0])
	}
	if emojis.Top[1].Emoji != "🎉" {
		t.Errorf("top[1] = %+v, want 🎉", emojis.Top[1])
	}
}

func TestComputeEmojis_Empty(t *testing.T) {
	emojis := ComputeEmojis(nil)
	if emojis.Total != 0 || len(emojis.Top) != 0 {
		t.Errorf("empty input must yield zero emojis, got %+v", emojis)
	}
}
