package recap

import (
	"testing"

	"github.com/ppiankov/skyrecap/internal/bsky"
)

func TestComputeTopics_Bigrams(t *testing.T) {
	posts := []bsky.Post{
		textPost("great concert"),
		textPost("great concert"),
		textPost("great concert"),
	}

	topics := ComputeTopics(posts)

	if len(topics.TopPhrases) != 1 {
		t.Fatalf("phrases = %v, want exactly one", topics.TopPhrases)
	}
	if topics.TopPhrases[0].Phrase != "great concert" || topics.TopPhrases[0].Count != 3 {
		t.Errorf("phrase = %+v, want {great concert 3}", topics.TopPhrases[0])
	}
}

func TestComputeTopics_FiltersNoise(t *testing.T) {
	posts := []bsky.Post{
		textPost("check https://example.com @friend.bsky.social #music the gig was amazing"),
		textPost("the gig was amazing"),
		textPost("the gig was amazing"),
	}

	topics := ComputeTopics(posts)

	for _, wc := range topics.TopWords {
		switch wc.Word {
		case "https", "example", "friend", "music", "check", "the", "was":
			t.Errorf("noise token %q survived filtering", wc.Word)
		}
	}

	found := false
	for _, wc := range topics.TopWords {
		if wc.Word == "amazing" && wc.Count == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected amazing×3 in %v", topics.TopWords)
	}
}

func TestComputeTopics_ShortAndStopwordsDropped(t *testing.T) {
	posts := []bsky.Post{
		textPost("cat cat cat"),          // too short
		textPost("this this this"),       // stopword
		textPost("keyboard keyboard keyboard"),
	}

	topics := ComputeTopics(posts)
	if len(topics.TopWords) != 1 || topics.TopWords[0].Word != "keyboard" {
		t.Errorf("words = %v, want only keyboard", topics.TopWords)
	}
}

func TestComputeTopics_MinimumCounts(t *testing.T) {
	posts := []bsky.Post{
		textPost("volcano sunrise"),
		textPost("volcano sunrise"),
	}

	topics := ComputeTopics(posts)

	// Two mentions is below the unigram floor of three...
	if len(topics.TopWords) != 0 {
		t.Errorf("words = %v, want none below the count floor", topics.TopWords)
	}
	// ...but meets the bigram floor of two.
	if len(topics.TopPhrases) != 1 {
		t.Errorf("phrases = %v, want the volcano sunrise bigram", topics.TopPhrases)
	}
}

func TestComputeTopics_Empty(t *testing.T) {
	topics := ComputeTopics(nil)
	if len(topics.TopWords) != 0 || len(topics.TopPhrases) != 0 {
		t.Errorf("empty input must yield no topics, got %+v", topics)
	}
}
