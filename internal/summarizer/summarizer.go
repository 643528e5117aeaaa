package summarizer

import (
	"context"
	"sort"
	"strings"

	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/textutil"
)

const (
	chunkSize        = 1024
	summaryMaxLength = 200
	summaryMinLength = 80

	// DefaultSentences is the extractive fallback's selection size.
	DefaultSentences = 3
)

// Keywords that boost a sentence's extractive score.
var medicalKeywords = []string{
	"patient", "diagnosis", "treatment", "symptom", "pain", "injury",
	"recovery", "therapy", "medication", "doctor", "condition",
}

// Summarizer produces an abstractive summary through the model service when
// one is wired, degrading to extractive sentence selection otherwise.
type Summarizer struct {
	service      models.SummaryService
	numSentences int
}

func New(service models.SummaryService, numSentences int) *Summarizer {
	if numSentences <= 0 {
		numSentences = DefaultSentences
	}
	return &Summarizer{service: service, numSentences: numSentences}
}

func (s *Summarizer) Summarize(ctx context.Context, fullText string) string {
	if strings.TrimSpace(fullText) == "" {
		return ""
	}
	if s.service != nil {
		out, err := s.abstractive(ctx, fullText)
		if err == nil {
			return out
		}
		logger.New().WithField("component", "summarizer").
			WithError(err).Warn("abstractive summarization failed, using extractive fallback")
	}
	return s.extractive(fullText)
}

// abstractive summarizes through the model service. Long texts are cut into
// fixed-size character windows summarized independently; the pieces are
// joined with spaces without any cross-chunk coherence pass.
func (s *Summarizer) abstractive(ctx context.Context, text string) (string, error) {
	if len(text) <= chunkSize {
		return s.service.Summarize(ctx, text, summaryMaxLength, summaryMinLength)
	}
	var parts []string
	for start := 0; start < len(text); start += chunkSize {
		end := start + chunkSize
		if end > len(text) {
			end = len(text)
		}
		part, err := s.service.Summarize(ctx, text[start:end], summaryMaxLength, summaryMinLength)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " "), nil
}

// extractive selects the highest-scoring sentences and re-orders the
// selection back into source order before joining.
func (s *Summarizer) extractive(text string) string {
	sentences := textutil.SplitSentences(text, 20)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= s.numSentences {
		return strings.Join(sentences, ". ") + "."
	}

	type scored struct {
		idx   int
		score int
	}
	ranked := make([]scored, len(sentences))
	for i, sent := range sentences {
		score := len(sent) + 20*textutil.CountMatches(sent, medicalKeywords)
		if i == 0 || i == len(sentences)-1 {
			score += 10
		}
		ranked[i] = scored{idx: i, score: score}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	selected := make(map[string]struct{}, s.numSentences)
	for _, r := range ranked[:s.numSentences] {
		selected[sentences[r.idx]] = struct{}{}
	}

	var ordered []string
	for _, sent := range sentences {
		if _, ok := selected[sent]; ok {
			ordered = append(ordered, sent)
		}
	}
	return strings.Join(ordered, ". ") + "."
}
