package recap

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

const linkMaxDomains = 10

var linkURLRe = regexp.MustCompile(`https?://[^\s)\]}>"']+`)

// The platform's own hosts are not "shared links".
var ownDomains = map[string]bool{
	"bsky.app":    true,
	"bsky.social": true,
	"atproto.com": true,
}

// DomainCount is one ranked shared domain.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// Links reports what the account linked to and how link-heavy its
// posting was.
type Links struct {
	TotalLinks int           `json:"totalLinks"`
	TopDomains []DomainCount `json:"topDomains,omitempty"`
	Style      Label         `json:"style"`
}

// linkRules maps the link-per-post ratio to a sharing style, top to
// bottom, first match wins.
var linkRules = []struct {
	match func(ratio float64) bool
	label Label
}{
	{
		match: func(ratio float64) bool { return ratio == 0 },
		label: Label{Name: "Text-only", Description: "Not a single outbound link all year."},
	},
	{
		match: func(ratio float64) bool { return ratio > 0.30 },
		label: Label{Name: "Link Curator", Description: "Your feed doubled as a reading list."},
	},
	{
		match: func(ratio float64) bool { return ratio > 0.15 },
		label: Label{Name: "Selective Sharer", Description: "You shared links when they earned it."},
	},
	{
		match: func(ratio float64) bool { return ratio > 0.05 },
		label: Label{Name: "Occasional Linker", Description: "A link here and there, mostly your own words."},
	},
	{
		match: func(ratio float64) bool { return true },
		label: Label{Name: "Link Sharer", Description: "The rare link, when something really stuck."},
	},
}

// ComputeLinks extracts URLs from post text and embeds, tallies their
// domains (www-stripped, platform hosts excluded, per-post duplicates
// collapsed), and classifies the sharing style by the links-per-post
// ratio.
func ComputeLinks(posts []bsky.Post) Links {
	domains := make(map[string]int)
	total := 0

	for _, p := range posts {
		urls := linkURLRe.FindAllString(p.Text, -1)
		urls = append(urls, p.Links...)
		// Clients usually repeat the embed URI in the post text; the
		// same URL counts once per post.
		seen := make(map[string]bool, len(urls))
		for _, raw := range urls {
			u := strings.TrimRight(raw, ".,;:!?")
			if seen[u] {
				continue
			}
			seen[u] = true
			domain := domainOf(u)
			if domain == "" || ownDomains[domain] {
				continue
			}
			domains[domain]++
			total++
		}
	}

	ranked := make([]DomainCount, 0, len(domains))
	for d, n := range domains {
		ranked = append(ranked, DomainCount{Domain: d, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Domain < ranked[j].Domain
	})
	if len(ranked) > linkMaxDomains {
		ranked = ranked[:linkMaxDomains]
	}

	ratio := 0.0
	if len(posts) > 0 {
		ratio = float64(total) / float64(len(posts))
	}

	out := Links{TotalLinks: total, TopDomains: ranked}
	for _, rule := range linkRules {
		if rule.match(ratio) {
			out.Style = rule.label
			break
		}
	}
	return out
}

func domainOf(raw string) string {
	u, err := url.Parse(strings.TrimRight(raw, ".,;:!?"))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
