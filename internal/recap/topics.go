package recap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

const (
	topicMaxWords   = 10
	topicMaxPhrases = 5
	topicMinWordN   = 3 // a unigram needs at least this many mentions
	topicMinPhraseN = 2
)

var (
	topicURLRe     = regexp.MustCompile(`https?://\S+`)
	topicMentionRe = regexp.MustCompile(`@[\w.-]+`)
	topicHashtagRe = regexp.MustCompile(`#\w+`)
	topicStripRe   = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// WordCount is one ranked unigram.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// PhraseCount is one ranked bigram.
type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Topics reports the most frequent meaningful words and two-word
// phrases across the year's posts.
type Topics struct {
	TopWords   []WordCount   `json:"topWords,omitempty"`
	TopPhrases []PhraseCount `json:"topPhrases,omitempty"`
}

// ComputeTopics lowercases each post, strips URLs, mentions, hashtags,
// and punctuation, then tallies unigrams and adjacent bigrams that pass
// the length and stop-word filters. Ranking is by count descending,
// alphabetical on ties.
func ComputeTopics(posts []bsky.Post) Topics {
	words := make(map[string]int)
	phrases := make(map[string]int)

	for _, p := range posts {
		tokens := tokenize(p.Text)
		for i, tok := range tokens {
			ok := isTopicToken(tok)
			if ok {
				words[tok]++
			}
			if i > 0 && ok && isTopicToken(tokens[i-1]) {
				phrases[tokens[i-1]+" "+tok]++
			}
		}
	}

	return Topics{
		TopWords:   rankWords(words),
		TopPhrases: rankPhrases(phrases),
	}
}

// tokenize returns the lowercased whitespace tokens of text with URLs,
// mentions, hashtags, and remaining punctuation removed. Short and
// stop-listed tokens are kept here so bigram adjacency reflects the
// original token stream; filtering happens at count time.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = topicURLRe.ReplaceAllString(text, " ")
	text = topicMentionRe.ReplaceAllString(text, " ")
	text = topicHashtagRe.ReplaceAllString(text, " ")
	text = topicStripRe.ReplaceAllString(text, " ")
	return strings.Fields(text)
}

func rankWords(counts map[string]int) []WordCount {
	var ranked []WordCount
	for w, n := range counts {
		if n >= topicMinWordN {
			ranked = append(ranked, WordCount{Word: w, Count: n})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if len(ranked) > topicMaxWords {
		ranked = ranked[:topicMaxWords]
	}
	return ranked
}

func rankPhrases(counts map[string]int) []PhraseCount {
	var ranked []PhraseCount
	for ph, n := range counts {
		if n >= topicMinPhraseN {
			ranked = append(ranked, PhraseCount{Phrase: ph, Count: n})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Phrase < ranked[j].Phrase
	})
	if len(ranked) > topicMaxPhrases {
		ranked = ranked[:topicMaxPhrases]
	}
	return ranked
}
