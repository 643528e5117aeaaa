package keywords

import (
	"context"
	"sort"
	"strings"

	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
)

// DefaultTopN is the keyword list bound when no override is configured.
const DefaultTopN = 15

// mergeStopWords is the fixed exclusion set applied at the merge stage.
var mergeStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

// Extractor merges up to three candidate generators into one ranked keyword
// list. Both model-backed generators are optional and individually
// fault-tolerant: a failing generator contributes nothing.
type Extractor struct {
	keyphrase models.KeyphraseService
	chunks    models.ChunkService
	topN      int
}

func New(keyphrase models.KeyphraseService, chunks models.ChunkService, topN int) *Extractor {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Extractor{keyphrase: keyphrase, chunks: chunks, topN: topN}
}

// Extract pools candidates from the embedding, statistical, and syntactic
// generators, ranks the pool by frequency, filters stop words and short
// tokens, and returns at most topN unique lowercase keywords. Because
// filtering happens before the top-2N cut, heavy duplication can leave the
// final list shorter than topN.
func (e *Extractor) Extract(ctx context.Context, fullText string) []string {
	log := logger.New().WithField("component", "keywords")

	var pool []string

	if e.keyphrase != nil {
		phrases, err := e.keyphrase.Keyphrases(ctx, fullText, 2, e.topN)
		if err != nil {
			log.WithError(err).Warn("keyphrase service failed, skipping generator")
		}
		pool = append(pool, phrases...)
	}

	pool = append(pool, tfidfKeywords(fullText, e.topN)...)

	if e.chunks != nil {
		chunks, err := e.chunks.NounChunks(ctx, fullText)
		if err != nil {
			log.WithError(err).Warn("chunk service failed, skipping generator")
		}
		pool = append(pool, topNounPhrases(chunks, e.topN)...)
	}

	return mergePool(pool, e.topN)
}

// topNounPhrases keeps chunks of at most three words and ranks them by how
// often the chunker produced them.
func topNounPhrases(chunks []string, topN int) []string {
	var phrases []string
	for _, c := range chunks {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || len(strings.Fields(c)) > 3 {
			continue
		}
		phrases = append(phrases, c)
	}
	return topByFrequency(phrases, topN)
}

// mergePool ranks the pooled candidates: lowercase, count, drop stop words
// and tokens under three characters, take the top 2N by frequency, then cut
// to N unique entries in rank order.
func mergePool(pool []string, topN int) []string {
	lowered := make([]string, 0, len(pool))
	for _, kw := range pool {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, stop := mergeStopWords[kw]; stop {
			continue
		}
		if len(kw) < 3 {
			continue
		}
		lowered = append(lowered, kw)
	}

	ranked := topByFrequency(lowered, 2*topN)

	seen := make(map[string]struct{}, len(ranked))
	out := make([]string, 0, topN)
	for _, kw := range ranked {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
		if len(out) >= topN {
			break
		}
	}
	return out
}

// topByFrequency returns the n most frequent items, ties broken by first
// encounter order so results stay deterministic.
func topByFrequency(items []string, n int) []string {
	counts := make(map[string]int, len(items))
	firstSeen := make(map[string]int, len(items))
	var order []string
	for i, it := range items {
		if _, ok := counts[it]; !ok {
			firstSeen[it] = i
			order = append(order, it)
		}
		counts[it]++
	}
	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
