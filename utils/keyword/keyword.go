// Package keyword extracts canonical topic keywords from headlines.
package keyword

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stopwords = toSet(
	"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "can", "shall", "to", "of", "in", "for",
	"on", "with", "at", "by", "from", "as", "into", "through", "during",
	"before", "after", "above", "below", "between", "out", "off", "up",
	"down", "about", "or", "and", "but", "not", "no", "nor", "so", "yet",
	"both", "either", "neither", "each", "every", "all", "any", "few",
	"more", "most", "other", "some", "such", "than", "too", "very",
	"just", "because", "if", "when", "while", "how", "what", "which",
	"who", "whom", "this", "that", "these", "those", "it", "its",
	"i", "me", "my", "we", "our", "you", "your", "he", "him", "his",
	"she", "her", "they", "them", "their",
	"new", "now", "get", "got", "make", "made", "way", "back",
	"show", "ask", "tell", "use", "using", "used",
	"why", "via", "vs", "like", "one", "two", "first",
	"also", "even", "still", "already", "here", "there",
	"says", "said", "lets", "let", "see", "look",
	"need", "want", "think", "know", "work", "working",
	"really", "much", "many", "well", "only", "over",
	"year", "years", "day", "days", "time", "long",
	"part", "things", "thing", "goes", "going", "come",
	"better", "best", "big", "small", "old", "next",
	"open", "source", "free", "built", "build", "building",
	"people", "world", "today", "never", "keep", "take",
)

var aliases = map[string]string{
	"gpt4":     "gpt-4",
	"gpt-4o":   "gpt-4",
	"gpt4o":    "gpt-4",
	"gpt5":     "gpt-5",
	"llms":     "llm",
	"genai":    "generative-ai",
	"gen-ai":   "generative-ai",
	"js":       "javascript",
	"ts":       "typescript",
	"reactjs":  "react",
	"react.js": "react",
	"vuejs":    "vue",
	"vue.js":   "vue",
	"nodejs":   "node",
	"node.js":  "node",
	"nextjs":   "next.js",
	"golang":   "go",
	"rustlang": "rust",
	"py":       "python",
	"cpp":      "c++",
	"gh":       "github",
	"k8s":      "kubernetes",
	"tf":       "terraform",
	"postgres": "postgresql",
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var lower = cases.Lower(language.Und)

// fold lower-cases text and strips diacritics so "Café" and "cafe" agree.
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return lower.String(folded)
}

// Extract returns the distinct canonical keywords in text, in first-seen order.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return ' '
		}
	}, fold(text))

	seen := make(map[string]struct{})
	var out []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 1 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		token = strings.Trim(token, "-.")
		if len(token) <= 1 {
			continue
		}
		canonical := canonicalize(token)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

// Normalize returns the canonical form of a single keyword.
func Normalize(keyword string) string {
	return canonicalize(strings.TrimSpace(fold(keyword)))
}

func canonicalize(token string) string {
	if alias, ok := aliases[token]; ok {
		return alias
	}
	return token
}
