package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/types"
)

type stubPolarity struct {
	p   models.Polarity
	err error
}

func (s *stubPolarity) Polarity(context.Context, string) (models.Polarity, error) {
	return s.p, s.err
}

func TestClassifyTotality(t *testing.T) {
	sentiments := map[types.Sentiment]bool{
		types.SentimentAnxious: true, types.SentimentNeutral: true, types.SentimentReassured: true,
	}
	intents := map[types.Intent]bool{
		types.IntentReportingSymptoms: true, types.IntentSeekingReassurance: true,
		types.IntentConfirmingRecovery: true, types.IntentAskingQuestions: true,
		types.IntentDescribingCondition: true,
	}

	inputs := []string{
		"",
		"   ",
		"completely unrelated text with no signal words at all",
		"I'm worried about the pain",
		"Feeling much better, thank you",
	}
	c := New(nil)
	for _, in := range inputs {
		si := c.Classify(context.Background(), in)
		assert.True(t, sentiments[si.Sentiment], "out-of-set sentiment %q for %q", si.Sentiment, in)
		assert.True(t, intents[si.Intent], "out-of-set intent %q for %q", si.Intent, in)
	}
}

func TestClassifyEmptyPatientText(t *testing.T) {
	si := New(nil).Classify(context.Background(), "")
	assert.Equal(t, types.SentimentNeutral, si.Sentiment)
	assert.Equal(t, types.IntentDescribingCondition, si.Intent)
}

func TestClassifyFeverHeadacheScenario(t *testing.T) {
	si := New(nil).Classify(context.Background(),
		"I have fever and a bad headache, I'm worried it's serious.")

	assert.Equal(t, types.SentimentAnxious, si.Sentiment)
	// "ache" (inside headache) and "worried" tie 1-1; symptom reporting is
	// first in the priority order
	assert.Equal(t, types.IntentReportingSymptoms, si.Intent)
}

func TestRuleBasedSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Sentiment
	}{
		{"anxious wins", "I'm worried and scared about this", types.SentimentAnxious},
		{"reassured wins", "I feel so much better and relieved", types.SentimentReassured},
		{"tie is neutral", "worried but feeling better now", types.SentimentNeutral},
		{"no signal is neutral", "the appointment is on Tuesday", types.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ruleBasedSentiment(tt.text))
		})
	}
}

func TestClassifySentimentWithPolarityService(t *testing.T) {
	tests := []struct {
		name string
		stub *stubPolarity
		want types.Sentiment
	}{
		{"confident positive", &stubPolarity{p: models.Polarity{Label: "POSITIVE", Confidence: 0.95}}, types.SentimentReassured},
		{"confident negative", &stubPolarity{p: models.Polarity{Label: "NEGATIVE", Confidence: 0.92}}, types.SentimentAnxious},
		{"low confidence", &stubPolarity{p: models.Polarity{Label: "POSITIVE", Confidence: 0.55}}, types.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			si := New(tt.stub).Classify(context.Background(), "some patient text without signal words")
			assert.Equal(t, tt.want, si.Sentiment)
		})
	}
}

func TestClassifySentimentFallsBackOnServiceError(t *testing.T) {
	c := New(&stubPolarity{err: errors.New("classifier offline")})
	si := c.Classify(context.Background(), "I'm really worried about these results")
	assert.Equal(t, types.SentimentAnxious, si.Sentiment)
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Intent
	}{
		{"symptom reporting", "the pain is bothering me and hurting a lot", types.IntentReportingSymptoms},
		{"seeking reassurance", "is it normal to feel this, what if it gets worse, should i rest", types.IntentSeekingReassurance},
		{"confirming recovery", "much better, recovering well, healing and making progress", types.IntentConfirmingRecovery},
		{"no signal", "we talked about the weather", types.IntentDescribingCondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIntent(tt.text))
		})
	}
}
