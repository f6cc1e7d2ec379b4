package recap

// stopwords are tokens excluded from topic extraction: pronouns,
// auxiliaries, prepositions, filler verbs, platform vocabulary, and
// generic nouns that say nothing about what an account posts about.
// Only tokens of four or more characters matter here; shorter ones are
// dropped by the length filter before this set is consulted.
var stopwords = map[string]bool{
	// pronouns and determiners
	"this": true, "that": true, "these": true, "those": true,
	"what": true, "which": true, "whose": true, "whom": true,
	"they": true, "them": true, "their": true, "theirs": true,
	"your": true, "yours": true, "yourself": true,
	"ours": true, "ourselves": true, "myself": true,
	"himself": true, "herself": true, "itself": true,
	"themselves": true, "anybody": true, "anyone": true,
	"anything": true, "everybody": true, "everyone": true,
	"everything": true, "nobody": true, "nothing": true,
	"somebody": true, "someone": true, "something": true,
	"some": true, "such": true, "same": true, "each": true,
	"other": true, "others": true, "another": true, "both": true,

	// auxiliaries and common verbs
	"have": true, "been": true, "being": true, "were": true,
	"will": true, "would": true, "could": true, "should": true,
	"shall": true, "might": true, "must": true, "does": true,
	"doing": true, "done": true, "cannot": true, "came": true,
	"come": true, "coming": true, "goes": true, "going": true,
	"gone": true, "went": true, "gets": true, "getting": true,
	"give": true, "gives": true, "given": true, "giving": true,
	"take": true, "takes": true, "taken": true, "taking": true,
	"make": true, "makes": true, "making": true, "made": true,
	"know": true, "knows": true, "known": true, "knowing": true,
	"think": true, "thinks": true, "thinking": true, "thought": true,
	"want": true, "wants": true, "wanted": true, "need": true,
	"needs": true, "needed": true, "look": true, "looks": true,
	"looking": true, "looked": true, "feel": true, "feels": true,
	"feeling": true, "felt": true, "tell": true, "tells": true,
	"told": true, "said": true, "says": true, "saying": true,
	"seem": true, "seems": true, "seemed": true, "keep": true,
	"keeps": true, "trying": true, "tried": true, "tries": true,
	"used": true, "using": true, "uses": true, "find": true,
	"found": true, "still": true, "also": true, "just": true,

	// prepositions, conjunctions, adverbs
	"about": true, "above": true, "after": true, "again": true,
	"against": true, "along": true, "already": true, "always": true,
	"around": true, "because": true, "before": true, "behind": true,
	"below": true, "between": true, "beyond": true, "during": true,
	"either": true, "else": true, "even": true, "ever": true,
	"every": true, "from": true, "here": true, "however": true,
	"into": true, "like": true, "many": true, "maybe": true,
	"more": true, "most": true, "much": true, "near": true,
	"neither": true, "never": true, "none": true, "only": true,
	"onto": true, "over": true, "perhaps": true, "quite": true,
	"rather": true, "really": true, "since": true, "sometimes": true,
	"soon": true, "than": true, "then": true, "there": true,
	"therefore": true, "though": true, "through": true, "thus": true,
	"together": true, "toward": true, "towards": true, "under": true,
	"until": true, "upon": true, "very": true, "well": true,
	"when": true, "where": true, "whether": true, "while": true,
	"with": true, "within": true, "without": true, "yeah": true,
	"okay": true, "please": true, "thanks": true,
	"thank": true, "sorry": true, "right": true, "sure": true,

	// generic nouns and qualifiers
	"thing": true, "things": true, "stuff": true, "time": true,
	"times": true, "year": true, "years": true, "today": true,
	"tomorrow": true, "yesterday": true, "week": true, "month": true,
	"people": true, "person": true, "someday": true, "world": true,
	"life": true, "good": true, "nice": true,
	"little": true, "long": true, "first": true, "last": true,
	"next": true, "back": true, "down": true, "work": true,
	"love": true, "best": true, "better": true, "whole": true,
	"lots": true, "kind": true, "kinda": true, "actually": true,
	"literally": true, "honestly": true, "probably": true,
	"definitely": true, "absolutely": true, "basically": true,

	// platform vocabulary
	"bsky": true, "bluesky": true, "skeet": true, "skeets": true,
	"post": true, "posts": true, "posted": true, "posting": true,
	"repost": true, "reposts": true, "reply": true, "replies": true,
	"thread": true, "threads": true, "follow": true, "follows": true,
	"follower": true, "followers": true, "following": true,
	"feed": true, "feeds": true, "timeline": true, "account": true,
	"handle": true, "profile": true, "mute": true, "block": true,
}

// isTopicToken reports whether a lowercased token survives the length
// and stop-word filters.
func isTopicToken(token string) bool {
	if len([]rune(token)) < 4 {
		return false
	}
	return !stopwords[token]
}
