package models

import (
	"context"
	"strings"
)

// Mock provides deterministic in-process model responses for offline demos
// and tests (USE_MOCK_MODELS=true). Responses are derived from the input so
// repeated runs stay byte-identical.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

var mockTerms = []Entity{
	{Text: "neck pain", Label: "DISEASE"},
	{Text: "back pain", Label: "DISEASE"},
	{Text: "headache", Label: "DISEASE"},
	{Text: "fever", Label: "DISEASE"},
	{Text: "whiplash", Label: "DISEASE"},
	{Text: "physiotherapy", Label: "TREATMENT"},
	{Text: "painkillers", Label: "CHEMICAL"},
}

func (m *Mock) Entities(_ context.Context, text string) ([]Entity, error) {
	var out []Entity
	lower := strings.ToLower(text)
	for _, term := range mockTerms {
		if strings.Contains(lower, term.Text) {
			out = append(out, term)
		}
	}
	return out, nil
}

func (m *Mock) Keyphrases(_ context.Context, text string, _, topN int) ([]string, error) {
	words := strings.Fields(strings.ToLower(text))
	var out []string
	for _, w := range words {
		w = strings.Trim(w, ".,!?")
		if len(w) >= 6 {
			out = append(out, w)
		}
		if len(out) >= topN {
			break
		}
	}
	return out, nil
}

func (m *Mock) NounChunks(_ context.Context, text string) ([]string, error) {
	// crude: adjacent capitalizable word pairs stand in for noun chunks
	words := strings.Fields(text)
	var out []string
	for i := 0; i+1 < len(words); i += 2 {
		out = append(out, strings.ToLower(strings.Trim(words[i], ".,!?")+" "+strings.Trim(words[i+1], ".,!?")))
	}
	return out, nil
}

func (m *Mock) Summarize(_ context.Context, text string, maxLength, _ int) (string, error) {
	if len(text) > maxLength {
		return text[:maxLength], nil
	}
	return text, nil
}

func (m *Mock) Polarity(_ context.Context, text string) (Polarity, error) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "worried") || strings.Contains(lower, "scared"):
		return Polarity{Label: "NEGATIVE", Confidence: 0.95}, nil
	case strings.Contains(lower, "better") || strings.Contains(lower, "relieved"):
		return Polarity{Label: "POSITIVE", Confidence: 0.95}, nil
	}
	return Polarity{Label: "POSITIVE", Confidence: 0.5}, nil
}
