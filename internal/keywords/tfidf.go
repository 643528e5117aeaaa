package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"clinical-insights-go/internal/textutil"
)

// Stop words removed before n-gram construction in the statistical
// generator. A compact English list; only the merge-stage set is normative.
var tfidfStopWords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "we": {}, "our": {}, "you": {}, "your": {},
	"he": {}, "she": {}, "it": {}, "its": {}, "they": {}, "them": {}, "their": {},
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {},
	"to": {}, "from": {}, "in": {}, "on": {}, "up": {}, "down": {}, "out": {},
	"so": {}, "than": {}, "too": {}, "very": {}, "can": {}, "will": {},
	"just": {}, "not": {}, "no": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "what": {}, "which": {}, "when": {}, "how": {}, "as": {},
}

var wordToken = regexp.MustCompile(`[a-zA-Z][a-zA-Z']*`)

// tfidfKeywords scores 1-2 word n-grams across the text's sentences treated
// as separate documents and returns the topN by summed tf-idf. Texts with
// fewer than two usable sentences yield nothing.
func tfidfKeywords(text string, topN int) []string {
	sentences := textutil.SplitSentences(text, 10)
	if len(sentences) < 2 {
		return nil
	}

	docs := make([][]string, 0, len(sentences))
	for _, s := range sentences {
		docs = append(docs, ngrams(s))
	}

	df := map[string]int{}
	for _, doc := range docs {
		seen := map[string]struct{}{}
		for _, g := range doc {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				df[g]++
			}
		}
	}

	n := float64(len(docs))
	scores := map[string]float64{}
	firstSeen := map[string]int{}
	var order []string
	pos := 0
	for _, doc := range docs {
		tf := map[string]int{}
		for _, g := range doc {
			tf[g]++
			if _, ok := firstSeen[g]; !ok {
				firstSeen[g] = pos
				order = append(order, g)
			}
			pos++
		}
		for g, f := range tf {
			idf := math.Log((1+n)/(1+float64(df[g]))) + 1
			scores[g] += float64(f) * idf
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})
	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// ngrams tokenizes a sentence, drops stop words, and emits the remaining
// unigrams plus adjacent bigrams.
func ngrams(sentence string) []string {
	raw := wordToken.FindAllString(strings.ToLower(sentence), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := tfidfStopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}

	grams := make([]string, 0, 2*len(tokens))
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}
