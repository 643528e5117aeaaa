package aggregator

import (
	"fmt"

	"clinical-insights-go/internal/types"
)

// Insight summarizes a batch of pipeline results.
type Insight struct {
	TotalTranscripts int            `json:"total_transcripts"`
	SentimentCounts  map[string]int `json:"sentiment_counts"`
	IntentCounts     map[string]int `json:"intent_counts"`
	DiagnosisCounts  map[string]int `json:"diagnosis_counts"`
	AnxiousRate      float64        `json:"anxious_rate"`
	Advisory         Advisory       `json:"advisory"`
}

// Advisory is a short recommendation card derived from the batch stats.
type Advisory struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

const anxiousRateThreshold = 0.35

// Aggregate folds per-transcript outputs into batch-level counts and an
// advisory card when the anxious share crosses the threshold.
func Aggregate(results []types.CompleteOutput) Insight {
	sentiments := map[string]int{}
	intents := map[string]int{}
	diagnoses := map[string]int{}
	anxious := 0

	for _, r := range results {
		sentiments[string(r.SentimentIntent.Sentiment)]++
		intents[string(r.SentimentIntent.Intent)]++
		if r.SentimentIntent.Sentiment == types.SentimentAnxious {
			anxious++
		}
		if d := r.MedicalReport.Diagnosis; d != "" && d != "Not specified" {
			diagnoses[d]++
		}
	}

	rate := 0.0
	if len(results) > 0 {
		rate = float64(anxious) / float64(len(results))
	}

	return Insight{
		TotalTranscripts: len(results),
		SentimentCounts:  sentiments,
		IntentCounts:     intents,
		DiagnosisCounts:  diagnoses,
		AnxiousRate:      rate,
		Advisory:         advise(rate),
	}
}

func advise(anxiousRate float64) Advisory {
	if anxiousRate >= anxiousRateThreshold {
		return Advisory{
			Insight: fmt.Sprintf("High share of anxious patients (%.0f%%)", anxiousRate*100),
			Action:  "Review reassurance and follow-up communication with these patients",
			Impact:  "Reduce repeat visits driven by unresolved concerns",
		}
	}
	return Advisory{
		Insight: "No strong anxiety pattern detected",
		Action:  "Monitor and collect more transcripts",
		Impact:  "Low immediate intervention",
	}
}
