package models

import (
	"context"

	"clinical-insights-go/internal/config"
)

// Entity is one span returned by the NER collaborator.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Polarity is the binary sentiment classifier's verdict.
type Polarity struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type NERService interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

type KeyphraseService interface {
	Keyphrases(ctx context.Context, text string, maxWords, topN int) ([]string, error)
}

type ChunkService interface {
	NounChunks(ctx context.Context, text string) ([]string, error)
}

type SummaryService interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

type PolarityService interface {
	Polarity(ctx context.Context, text string) (Polarity, error)
}

// Services bundles the optional external model collaborators. A nil field
// means that capability is unavailable and its owning component runs its
// rule-based fallback instead. No call through Services may abort a pipeline
// run.
type Services struct {
	NER       NERService
	Keyphrase KeyphraseService
	Chunks    ChunkService
	Summary   SummaryService
	Polarity  PolarityService
}

// FromConfig selects the provider once at construction time: mock services
// for offline demos, the HTTP model server when configured, or nothing.
func FromConfig(cfg config.Config) Services {
	if cfg.UseMockModels {
		m := NewMock()
		return Services{NER: m, Keyphrase: m, Chunks: m, Summary: m, Polarity: m}
	}
	if cfg.ModelServerURL == "" {
		return Services{}
	}
	c := NewClient(cfg.ModelServerURL, cfg.ModelTimeout)
	return Services{NER: c, Keyphrase: c, Chunks: c, Summary: c, Polarity: c}
}
