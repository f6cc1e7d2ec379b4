package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/skyrecap/internal/recap"
)

func makeRecap() *recap.Recap {
	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &recap.Recap{
		Handle: "alice.test",
		Year:   2025,
		Profile: recap.ProfileCard{
			Handle:      "alice.test",
			DisplayName: "Alice",
			Followers:   1200,
			Follows:     340,
		},
		Stats: recap.Totals{
			Posts:           310,
			Likes:           4500,
			Reposts:         600,
			Replies:         800,
			TotalEngagement: 5900,
			AvgEngagement:   19,
		},
		TopPost: &recap.PostRef{
			URI:       "at://p/top",
			Text:      "the big announcement",
			CreatedAt: created,
			Likes:     400,
			Reposts:   90,
			Replies:   60,
		},
		Patterns: recap.Patterns{
			MostActiveMonth:   time.June,
			MostActiveWeekday: time.Tuesday,
			MostActiveHour:    21,
		},
		Streak: recap.Streak{Longest: 12, Start: "2025-03-01", End: "2025-03-12", ActiveDays: 140},
		TopFans: []recap.Fan{
			{DID: "did:plc:fan", Handle: "fan.test", DisplayName: "Biggest Fan", Likes: 40, Reposts: 5},
		},
		Topics: recap.Topics{
			TopWords:   []recap.WordCount{{Word: "gardening", Count: 24}},
			TopPhrases: []recap.PhraseCount{{Phrase: "tomato season", Count: 6}},
		},
		Emojis: recap.Emojis{
			Top:   []recap.EmojiCount{{Emoji: "🍅", Count: 15}},
			Total: 48,
		},
		Links: recap.Links{
			TotalLinks: 30,
			TopDomains: []recap.DomainCount{{Domain: "example.com", Count: 12}},
			Style:      recap.Label{Name: "Selective Sharer"},
		},
		Media:      recap.Media{ImagePosts: 80, Style: recap.Label{Name: "Visual Storyteller"}},
		Threads:    recap.Threads{Starters: 20, Style: recap.Label{Name: "Reply Guy"}},
		PosterType: recap.Label{Name: "Night Owl", Description: "Most active late at night"},
		PostingEra: recap.Era{Name: "Timeline Native", Description: "Short and punchy", Score: 40},
		Milestones: []recap.Milestone{
			{Number: 1, Post: recap.PostRef{Text: "first post of the year", CreatedAt: created}},
		},
		Timeline: recap.Timeline{
			BestMonth:   recap.Bucket{Key: "June", Avg: 25},
			BestWeekday: recap.Bucket{Key: "Tuesday", Avg: 22},
			BestHour:    recap.Bucket{Key: "21:00", Avg: 30},
		},
		Version:     recap.Version,
		GeneratedAt: created,
	}
}

func TestTerminalFormat_FullRecap(t *testing.T) {
	f := NewTerminal(false)
	var buf bytes.Buffer

	if err := f.Format(&buf, makeRecap()); err != nil {
		t.Fatalf("format: %v", err)
	}
	out := buf.String()

	// Header
	if !strings.Contains(out, "Alice") {
		t.Error("missing display name")
	}
	if !strings.Contains(out, "2025 in review") {
		t.Error("missing year header")
	}
	if !strings.Contains(out, "@alice.test") {
		t.Error("missing handle")
	}

	// Numbers
	if !strings.Contains(out, "310 posts") {
		t.Error("missing post count")
	}
	if !strings.Contains(out, "longest streak: 12 days") {
		t.Error("missing streak")
	}
	if !strings.Contains(out, "2025-03-01 to 2025-03-12") {
		t.Error("missing streak range")
	}

	// Identity
	if !strings.Contains(out, "Night Owl") {
		t.Error("missing archetype")
	}
	if !strings.Contains(out, "Timeline Native") {
		t.Error("missing era")
	}
	if !strings.Contains(out, "Visual Storyteller") {
		t.Error("missing media style")
	}

	// Rhythm
	if !strings.Contains(out, "June") || !strings.Contains(out, "21:00") {
		t.Error("missing rhythm line")
	}

	// Top post, topics, fans, milestones
	if !strings.Contains(out, "the big announcement") {
		t.Error("missing top post text")
	}
	if !strings.Contains(out, "gardening (24)") {
		t.Error("missing top word")
	}
	if !strings.Contains(out, `"tomato season" (6)`) {
		t.Error("missing top phrase")
	}
	if !strings.Contains(out, "🍅 ×15") {
		t.Error("missing emoji")
	}
	if !strings.Contains(out, "example.com (12)") {
		t.Error("missing domain")
	}
	if !strings.Contains(out, "Biggest Fan") {
		t.Error("missing fan")
	}
	if !strings.Contains(out, "post #1") {
		t.Error("missing milestone")
	}
}

func TestTerminalFormat_EmptyYear(t *testing.T) {
	f := NewTerminal(false)
	var buf bytes.Buffer

	r := &recap.Recap{
		Handle:  "quiet.test",
		Year:    2025,
		Profile: recap.ProfileCard{Handle: "quiet.test"},
	}
	if err := f.Format(&buf, r); err != nil {
		t.Fatalf("format: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No posts found") {
		t.Error("missing empty-year message")
	}
	if strings.Contains(out, "The numbers") {
		t.Error("should not render sections for an empty year")
	}
}

func TestTerminalFormat_TruncationNotice(t *testing.T) {
	f := NewTerminal(false)
	var buf bytes.Buffer

	r := makeRecap()
	r.Truncated = true
	if err := f.Format(&buf, r); err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.Contains(buf.String(), "partial sample") {
		t.Error("missing truncation notice")
	}
}

func TestTerminalFormat_NoANSIWithoutColor(t *testing.T) {
	f := NewTerminal(false)
	var buf bytes.Buffer

	if err := f.Format(&buf, makeRecap()); err != nil {
		t.Fatalf("format: %v", err)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Error("found ANSI escape codes with color=false")
	}
}

func TestTerminalFormat_ColorUsesANSI(t *testing.T) {
	f := NewTerminal(true)
	var buf bytes.Buffer

	if err := f.Format(&buf, makeRecap()); err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[1m") {
		t.Error("missing bold escape with color=true")
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"collapses   internal\n\nwhitespace", 40, "collapses internal whitespace"},
		{"abcdefghij", 5, "abcd…"},
	}
	for _, tt := range tests {
		if got := snippet(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("snippet(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
