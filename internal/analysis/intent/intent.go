package intent

import "strings"

// Kind 表示一类用户意图。
type Kind string

const (
	Price  Kind = "price"
	Bad    Kind = "bad"
	Hello  Kind = "hello"
	Search Kind = "search"
)

// Signals 汇总一段文本命中的意图。
type Signals struct {
	Price  bool
	Bad    bool
	Search bool
	// Hello is computed but no reply branch reads it yet.
	Hello bool
}

var keywordBuckets = map[Kind][]string{
	Price: {
		"price", "cost", "money", "expensive", "cheap", "precio", "coût", "kosten",
		"filus", "sa3r", "flous", "prix",
	},
	Bad: {
		"no", "bad", "wrong", "hate", "dislike", "mal", "mauvais", "schlecht",
		"mish", "mo", "laa",
	},
	Hello: {
		"hi", "hello", "hey", "greetings", "hola", "bonjour", "hallo", "salam",
		"marhaba", "ahlan",
	},
	Search: {
		"search", "find", "lookup", "google", "buscar", "chercher", "suchen", "bahth",
	},
}

// arabicBuckets replace the Latin lists when the text is in Arabic script.
var arabicBuckets = map[Kind][]string{
	Price: {"سعر", "تكلفة", "فلوس", "غالي", "رخيص"},
	Bad:   {"لا", "سيء", "غلط", "كره", "مش"},
}

// Keywords returns the keyword list used for kind under lang.
func Keywords(kind Kind, lang Language) []string {
	if lang == Arabic {
		if words, ok := arabicBuckets[kind]; ok {
			return words
		}
	}
	return keywordBuckets[kind]
}

// Classify 根据关键词表判断已小写文本的意图。
func Classify(lowered string, lang Language) Signals {
	return Signals{
		Price:  containsAny(lowered, Keywords(Price, lang)),
		Bad:    containsAny(lowered, Keywords(Bad, lang)),
		Hello:  containsAny(lowered, Keywords(Hello, lang)),
		Search: containsAny(lowered, Keywords(Search, lang)),
	}
}

// StripSearchTriggers removes every search trigger word and trims the rest.
func StripSearchTriggers(lowered string) string {
	query := lowered
	for _, word := range keywordBuckets[Search] {
		query = strings.ReplaceAll(query, word, "")
	}
	return strings.TrimSpace(query)
}
