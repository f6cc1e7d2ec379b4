package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/skyrecap/internal/recap"
)

// TerminalFormatter formats a recap for terminal output.
type TerminalFormatter struct {
	color bool
}

// NewTerminal creates a terminal formatter. Set color=true for ANSI colors.
func NewTerminal(color bool) *TerminalFormatter {
	return &TerminalFormatter{color: color}
}

// Format writes the recap to w, one facet per section.
func (f *TerminalFormatter) Format(w io.Writer, r *recap.Recap) error {
	name := r.Profile.DisplayName
	if name == "" {
		name = r.Profile.Handle
	}
	fmt.Fprintln(w, f.bold(fmt.Sprintf("%s — %d in review", name, r.Year)))
	fmt.Fprintf(w, "@%s · %d followers · %d following\n", r.Profile.Handle, r.Profile.Followers, r.Profile.Follows)
	if r.Truncated {
		fmt.Fprintln(w, f.dim("(partial sample: the year was too busy to walk completely)"))
	}
	fmt.Fprintln(w)

	if r.Stats.Posts == 0 {
		fmt.Fprintln(w, "No posts found for this year.")
		return nil
	}

	// Numbers
	fmt.Fprintln(w, f.bold("--- The numbers ---"))
	fmt.Fprintf(w, "  %d posts · %d likes · %d reposts · %d replies\n",
		r.Stats.Posts, r.Stats.Likes, r.Stats.Reposts, r.Stats.Replies)
	fmt.Fprintf(w, "  %d total engagement, %d per post on average\n", r.Stats.TotalEngagement, r.Stats.AvgEngagement)
	fmt.Fprintf(w, "  longest streak: %d days", r.Streak.Longest)
	if r.Streak.Start != "" && r.Streak.Longest > 1 {
		fmt.Fprintf(w, " (%s to %s)", r.Streak.Start, r.Streak.End)
	}
	fmt.Fprintf(w, ", active on %d days\n", r.Streak.ActiveDays)
	fmt.Fprintln(w)

	// Identity
	fmt.Fprintln(w, f.bold("--- Who you were ---"))
	fmt.Fprintf(w, "  %s — %s\n", f.green(r.PosterType.Name), r.PosterType.Description)
	fmt.Fprintf(w, "  %s — %s\n", f.green(r.PostingEra.Name), r.PostingEra.Description)
	fmt.Fprintf(w, "  media: %s · links: %s · threads: %s\n",
		r.Media.Style.Name, r.Links.Style.Name, r.Threads.Style.Name)
	fmt.Fprintln(w)

	// Rhythm
	fmt.Fprintln(w, f.bold("--- Your rhythm ---"))
	fmt.Fprintf(w, "  busiest: %s, %ss, around %02d:00\n",
		r.Patterns.MostActiveMonth, r.Patterns.MostActiveWeekday, r.Patterns.MostActiveHour)
	if r.Timeline.BestHour.Key != "" {
		fmt.Fprintf(w, "  engagement peaked in %s, on %ss, at %s\n",
			r.Timeline.BestMonth.Key, r.Timeline.BestWeekday.Key, r.Timeline.BestHour.Key)
	}
	fmt.Fprintln(w)

	f.writeTopPosts(w, r)
	f.writeTopics(w, r)
	f.writeFans(w, r)

	if len(r.Milestones) > 0 {
		fmt.Fprintln(w, f.bold("--- Milestones ---"))
		for _, m := range r.Milestones {
			fmt.Fprintf(w, "  post #%d on %s: %s\n",
				m.Number, m.Post.CreatedAt.Format("Jan 2"), f.dim(snippet(m.Post.Text, 60)))
		}
		fmt.Fprintln(w)
	}

	return nil
}

func (f *TerminalFormatter) writeTopPosts(w io.Writer, r *recap.Recap) {
	if r.TopPost == nil {
		return
	}
	fmt.Fprintln(w, f.bold("--- Top post ---"))
	fmt.Fprintf(w, "  %s\n", snippet(r.TopPost.Text, 120))
	fmt.Fprintf(w, "  %s\n", f.dim(fmt.Sprintf("%s · %d likes · %d reposts · %d replies",
		r.TopPost.CreatedAt.Format("Jan 2"), r.TopPost.Likes, r.TopPost.Reposts, r.TopPost.Replies)))
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeTopics(w io.Writer, r *recap.Recap) {
	if len(r.Topics.TopWords) == 0 && len(r.Emojis.Top) == 0 {
		return
	}
	fmt.Fprintln(w, f.bold("--- What you talked about ---"))
	if len(r.Topics.TopWords) > 0 {
		words := make([]string, 0, len(r.Topics.TopWords))
		for _, wc := range r.Topics.TopWords {
			words = append(words, fmt.Sprintf("%s (%d)", wc.Word, wc.Count))
		}
		fmt.Fprintf(w, "  words: %s\n", strings.Join(words, ", "))
	}
	if len(r.Topics.TopPhrases) > 0 {
		phrases := make([]string, 0, len(r.Topics.TopPhrases))
		for _, pc := range r.Topics.TopPhrases {
			phrases = append(phrases, fmt.Sprintf("%q (%d)", pc.Phrase, pc.Count))
		}
		fmt.Fprintf(w, "  phrases: %s\n", strings.Join(phrases, ", "))
	}
	if len(r.Emojis.Top) > 0 {
		emojis := make([]string, 0, len(r.Emojis.Top))
		for _, ec := range r.Emojis.Top {
			emojis = append(emojis, fmt.Sprintf("%s ×%d", ec.Emoji, ec.Count))
		}
		fmt.Fprintf(w, "  emojis (%d total): %s\n", r.Emojis.Total, strings.Join(emojis, "  "))
	}
	if len(r.Links.TopDomains) > 0 {
		domains := make([]string, 0, len(r.Links.TopDomains))
		for _, dc := range r.Links.TopDomains {
			domains = append(domains, fmt.Sprintf("%s (%d)", dc.Domain, dc.Count))
		}
		fmt.Fprintf(w, "  domains: %s\n", strings.Join(domains, ", "))
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeFans(w io.Writer, r *recap.Recap) {
	if len(r.TopFans) == 0 {
		return
	}
	fmt.Fprintln(w, f.bold("--- Your biggest fans ---"))
	for i, fan := range r.TopFans {
		name := fan.DisplayName
		if name == "" {
			name = fan.Handle
		}
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, name,
			f.dim(fmt.Sprintf("(@%s · %d likes, %d reposts)", fan.Handle, fan.Likes, fan.Reposts)))
	}
	fmt.Fprintln(w)
}

func snippet(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-1]) + "…"
}

func (f *TerminalFormatter) bold(s string) string {
	if !f.color {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

func (f *TerminalFormatter) green(s string) string {
	if !f.color {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

func (f *TerminalFormatter) dim(s string) string {
	if !f.color {
		return s
	}
	return "\033[2m" + s + "\033[0m"
}
