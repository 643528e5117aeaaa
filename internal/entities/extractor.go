package entities

import (
	"context"
	"strings"

	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/textutil"
	"clinical-insights-go/internal/types"
)

// Category keyword lists used both to bucket NER spans and to drive the
// keyword-window extraction. Order of the categories is the classification
// priority: the first list containing a match wins.
var (
	symptomKeywords = []string{
		"pain", "ache", "discomfort", "sore", "tender", "stiff", "numb",
		"tingling", "headache", "dizziness", "nausea", "vomiting", "fever",
		"fatigue", "weakness", "swelling", "inflammation", "rash", "itch",
	}
	diagnosisKeywords = []string{
		"diagnosis", "diagnosed", "condition", "disease", "disorder", "syndrome",
		"injury", "fracture", "infection", "inflammation", "chronic", "acute",
	}
	treatmentKeywords = []string{
		"treatment", "therapy", "medication", "medicine", "drug", "prescription",
		"physiotherapy", "surgery", "operation", "procedure", "exercise",
		"painkiller", "antibiotic", "dose", "session", "appointment",
	}
	prognosisKeywords = []string{
		"recovery", "prognosis", "outcome", "heal", "improve", "better",
		"recover", "expected", "timeline", "months", "weeks", "days",
	}
)

const (
	minSpanLen     = 10
	maxSpanLen     = 200
	maxPerCategory = 10
)

// Extractor classifies text spans into the four clinical entity categories.
// The NER service is optional; without it only the keyword-window strategy
// runs and recall is lower.
type Extractor struct {
	ner models.NERService
}

func New(ner models.NERService) *Extractor {
	return &Extractor{ner: ner}
}

// Extract runs both strategies over the full conversation text and merges
// their results per category as an ordered union. It never fails: a broken
// NER call degrades silently to keyword-window results.
func (e *Extractor) Extract(ctx context.Context, fullText string) types.EntityBag {
	log := logger.New().WithField("component", "entities")

	var modelSymptoms, modelDiagnosis, modelTreatment, modelPrognosis []string
	if e.ner != nil {
		ents, err := e.ner.Entities(ctx, fullText)
		if err != nil {
			log.WithError(err).Warn("ner service failed, keyword-window only")
		}
		for _, ent := range ents {
			lower := strings.ToLower(ent.Text)
			switch {
			case textutil.ContainsAny(lower, symptomKeywords):
				modelSymptoms = append(modelSymptoms, ent.Text)
			case textutil.ContainsAny(lower, diagnosisKeywords):
				modelDiagnosis = append(modelDiagnosis, ent.Text)
			case textutil.ContainsAny(lower, treatmentKeywords):
				modelTreatment = append(modelTreatment, ent.Text)
			case textutil.ContainsAny(lower, prognosisKeywords):
				modelPrognosis = append(modelPrognosis, ent.Text)
			}
		}
	}

	sentences := textutil.SplitSentences(fullText, 0)

	return types.EntityBag{
		Symptoms:  textutil.Dedupe(append(modelSymptoms, windowMatches(sentences, symptomKeywords)...)),
		Diagnosis: textutil.Dedupe(append(modelDiagnosis, windowMatches(sentences, diagnosisKeywords)...)),
		Treatment: textutil.Dedupe(append(modelTreatment, windowMatches(sentences, treatmentKeywords)...)),
		Prognosis: textutil.Dedupe(append(modelPrognosis, windowMatches(sentences, prognosisKeywords)...)),
	}
}

// windowMatches collects sentences containing any keyword of the category,
// keyword by keyword, bounded to a sensible span length and capped per
// category.
func windowMatches(sentences []string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		for _, s := range sentences {
			if !strings.Contains(strings.ToLower(s), kw) {
				continue
			}
			if len(s) > minSpanLen && len(s) < maxSpanLen {
				found = append(found, s)
			}
			if len(found) >= maxPerCategory {
				return found
			}
		}
	}
	return found
}
