package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"clinical-insights-go/internal/config"
	"clinical-insights-go/internal/entities"
	"clinical-insights-go/internal/keywords"
	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/preprocess"
	"clinical-insights-go/internal/sentiment"
	"clinical-insights-go/internal/soap"
	"clinical-insights-go/internal/summarizer"
	"clinical-insights-go/internal/types"
)

// ErrInputNotFound is the only fatal pipeline error: the source transcript
// does not exist or cannot be read. Everything else degrades.
var ErrInputNotFound = errors.New("transcript not found")

// Runner sequences the extraction stages over one transcript. Each run
// operates on freshly built immutable values, so a Runner is safe to reuse
// across transcripts.
type Runner struct {
	cfg        config.Config
	entities   *entities.Extractor
	keywords   *keywords.Extractor
	summarizer *summarizer.Summarizer
	classifier *sentiment.Classifier

	// now is injectable so tests can pin the Date fields.
	now func() time.Time
}

func New(cfg config.Config, svc models.Services) *Runner {
	return &Runner{
		cfg:        cfg,
		entities:   entities.New(svc.NER),
		keywords:   keywords.New(svc.Keyphrase, svc.Chunks, cfg.MaxKeywords),
		summarizer: summarizer.New(svc.Summary, cfg.SummarySentences),
		classifier: sentiment.New(svc.Polarity),
		now:        time.Now,
	}
}

// Run processes the transcript at path end-to-end and persists the JSON
// artifacts under the configured output directory. No partial outputs are
// written when the input cannot be read.
func (r *Runner) Run(ctx context.Context, path string) (types.CompleteOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CompleteOutput{}, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	out := r.RunText(ctx, string(data))
	if err := WriteArtifacts(out, r.cfg.OutputDir); err != nil {
		return out, err
	}
	return out, nil
}

// RunText is the file-free core: raw transcript in, complete output out.
// It cannot fail; every stage has a defined empty/default result.
func (r *Runner) RunText(ctx context.Context, raw string) types.CompleteOutput {
	log := logger.New().WithField("component", "pipeline").
		WithField("run_id", uuid.New().String())
	start := time.Now()

	log.Info("segmenting conversation")
	conv := preprocess.Segment(raw)

	log.Info("extracting medical entities")
	bag := r.entities.Extract(ctx, conv.FullText)

	log.Info("extracting keywords")
	kws := r.keywords.Extract(ctx, conv.FullText)

	log.Info("generating summary")
	summary := r.summarizer.Summarize(ctx, conv.FullText)

	log.Info("classifying sentiment and intent")
	si := r.classifier.Classify(ctx, conv.PatientText)

	log.Info("assembling report and SOAP note")
	date := r.now().Format("2006-01-02")
	report, note := soap.Build(conv, bag, summary, date)

	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("pipeline finished")

	if kws == nil {
		kws = []string{}
	}
	return types.CompleteOutput{
		MedicalReport:   report,
		Entities:        bag,
		Keywords:        kws,
		Summary:         summary,
		SentimentIntent: si,
		SoapNote:        note,
	}
}

// WriteArtifacts persists the four JSON artifacts, pretty-printed, UTF-8.
func WriteArtifacts(out types.CompleteOutput, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{"medical_summary.json", out.MedicalReport},
		{"sentiment_intent.json", out.SentimentIntent},
		{"soap_note.json", out.SoapNote},
		{"complete_output.json", out},
	}
	for _, f := range files {
		if err := WriteJSON(filepath.Join(dir, f.name), f.data); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes v pretty-printed to path.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
