package sentiment

import (
	"context"
	"strings"

	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/textutil"
	"clinical-insights-go/internal/types"
)

// Keyword sets for the rule-based sentiment fallback.
var (
	anxiousKeywords = []string{
		"worried", "concerned", "anxious", "nervous", "afraid", "fear", "scared",
		"uncertain", "doubt", "apprehensive", "stress", "panic",
	}
	reassuredKeywords = []string{
		"better", "improved", "reassuring", "confident", "relieved", "grateful",
		"thankful", "appreciate", "hopeful", "optimistic", "positive", "good news",
	}
)

// Keyword sets for intent, which is always rule-based. Declaration order is
// the tie-break priority.
var (
	symptomReportingKeywords = []string{
		"pain", "ache", "discomfort", "feeling", "experiencing", "symptom",
		"problem", "issue", "bothering", "hurting",
	}
	reassuranceSeekingKeywords = []string{
		"worried", "concerned", "should i", "is it normal", "what if", "afraid",
		"wondering", "question", "doubt",
	}
	recoveryConfirmingKeywords = []string{
		"better", "improved", "recovering", "healing", "progress", "feeling good",
		"much better", "doing well", "getting better",
	}
)

const (
	polarityWindow   = 512
	confidenceCutoff = 0.7
	polarityPositive = "POSITIVE"
	polarityNegative = "NEGATIVE"
)

// Classifier labels the patient's side of a conversation with one sentiment
// and one intent. The polarity service is optional; sentiment falls back to
// keyword counting when it is missing or errors.
type Classifier struct {
	polarity models.PolarityService
}

func New(polarity models.PolarityService) *Classifier {
	return &Classifier{polarity: polarity}
}

// Classify is total: any patient text, including empty, yields exactly one
// value from each enumeration.
func (c *Classifier) Classify(ctx context.Context, patientText string) types.SentimentIntent {
	if strings.TrimSpace(patientText) == "" {
		return types.SentimentIntent{
			Sentiment: types.SentimentNeutral,
			Intent:    types.IntentDescribingCondition,
		}
	}
	return types.SentimentIntent{
		Sentiment: c.classifySentiment(ctx, patientText),
		Intent:    classifyIntent(patientText),
	}
}

func (c *Classifier) classifySentiment(ctx context.Context, text string) types.Sentiment {
	if c.polarity != nil {
		window := text
		if len(window) > polarityWindow {
			window = window[:polarityWindow]
		}
		p, err := c.polarity.Polarity(ctx, window)
		if err != nil {
			logger.New().WithField("component", "sentiment").
				WithError(err).Warn("polarity service failed, using rule-based sentiment")
			return ruleBasedSentiment(text)
		}
		switch {
		case p.Label == polarityPositive && p.Confidence > confidenceCutoff:
			return types.SentimentReassured
		case p.Label == polarityNegative && p.Confidence > confidenceCutoff:
			return types.SentimentAnxious
		default:
			return types.SentimentNeutral
		}
	}
	return ruleBasedSentiment(text)
}

// ruleBasedSentiment counts anxious vs reassured keyword hits; the strictly
// greater nonzero count wins, anything else is Neutral.
func ruleBasedSentiment(text string) types.Sentiment {
	anxious := textutil.CountMatches(text, anxiousKeywords)
	reassured := textutil.CountMatches(text, reassuredKeywords)
	switch {
	case anxious > reassured && anxious > 0:
		return types.SentimentAnxious
	case reassured > anxious && reassured > 0:
		return types.SentimentReassured
	default:
		return types.SentimentNeutral
	}
}

// classifyIntent picks the intent category with the strictly highest nonzero
// keyword count; ties keep the earlier category in priority order.
func classifyIntent(text string) types.Intent {
	scores := []struct {
		intent types.Intent
		count  int
	}{
		{types.IntentReportingSymptoms, textutil.CountMatches(text, symptomReportingKeywords)},
		{types.IntentSeekingReassurance, textutil.CountMatches(text, reassuranceSeekingKeywords)},
		{types.IntentConfirmingRecovery, textutil.CountMatches(text, recoveryConfirmingKeywords)},
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.count > best.count {
			best = s
		}
	}
	if best.count > 0 {
		return best.intent
	}
	return types.IntentDescribingCondition
}
