package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinical-insights-go/internal/config"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/types"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		OutputDir:        filepath.Join(t.TempDir(), "outputs"),
		MaxKeywords:      15,
		SummarySentences: 3,
	}
}

// newTestRunner builds a runner with no model services (fallback-only) and a
// pinned clock so reruns are byte-identical.
func newTestRunner(cfg config.Config) *Runner {
	r := New(cfg, models.Services{})
	r.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return r
}

const sampleTranscript = "Doctor: Good morning Janet, how are you feeling today?\n" +
	"Patient: The neck pain is still there and I'm worried about it.\n" +
	"Doctor: The examination showed good progress, please schedule a follow-up appointment.\n" +
	"Patient: Thank you, I will."

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conversation.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMissingFile(t *testing.T) {
	cfg := testConfig(t)
	r := newTestRunner(cfg)

	_, err := r.Run(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotFound)

	// no partial outputs
	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWritesAllArtifacts(t *testing.T) {
	cfg := testConfig(t)
	r := newTestRunner(cfg)

	_, err := r.Run(context.Background(), writeTranscript(t, sampleTranscript))
	require.NoError(t, err)

	for _, name := range []string{
		"medical_summary.json", "sentiment_intent.json", "soap_note.json", "complete_output.json",
	} {
		info, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err, "missing artifact %s", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRunIsIdempotentWithoutModels(t *testing.T) {
	cfg := testConfig(t)
	r := newTestRunner(cfg)
	path := writeTranscript(t, sampleTranscript)

	_, err := r.Run(context.Background(), path)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(cfg.OutputDir, "complete_output.json"))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), path)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(cfg.OutputDir, "complete_output.json"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRunTextFallbackOnly(t *testing.T) {
	r := newTestRunner(testConfig(t))
	out := r.RunText(context.Background(), sampleTranscript)

	assert.Equal(t, "Janet", out.MedicalReport.PatientName)
	assert.Equal(t, types.SentimentAnxious, out.SentimentIntent.Sentiment)
	assert.NotEmpty(t, out.Entities.Symptoms)
	assert.NotEmpty(t, out.Summary)
	assert.Equal(t, "2026-08-28", out.MedicalReport.Date)
	assert.Equal(t, out.MedicalReport.Date, out.SoapNote.Date)
}

func TestRunTextEmptyTranscript(t *testing.T) {
	r := newTestRunner(testConfig(t))
	out := r.RunText(context.Background(), "")

	assert.Equal(t, types.SentimentNeutral, out.SentimentIntent.Sentiment)
	assert.Equal(t, types.IntentDescribingCondition, out.SentimentIntent.Intent)
	assert.Empty(t, out.Entities.Symptoms)
	assert.Empty(t, out.Entities.Diagnosis)
	assert.Empty(t, out.Entities.Treatment)
	assert.Empty(t, out.Entities.Prognosis)
	assert.Empty(t, out.Keywords)
	assert.Empty(t, out.Summary)
	assert.Equal(t, "Patient", out.MedicalReport.PatientName)
	assert.Equal(t, "Not specified", out.MedicalReport.Diagnosis)
}

func TestRunTextWithMockModels(t *testing.T) {
	cfg := testConfig(t)
	m := models.NewMock()
	r := New(cfg, models.Services{NER: m, Keyphrase: m, Chunks: m, Summary: m, Polarity: m})
	r.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }

	out := r.RunText(context.Background(), sampleTranscript)

	assert.Contains(t, out.Entities.Symptoms, "neck pain")
	assert.NotEmpty(t, out.Keywords)
	assert.NotEmpty(t, out.Summary)
}

func TestKeywordProperties(t *testing.T) {
	r := newTestRunner(testConfig(t))
	out := r.RunText(context.Background(), sampleTranscript)

	assert.LessOrEqual(t, len(out.Keywords), 15)
	for _, kw := range out.Keywords {
		assert.GreaterOrEqual(t, len(kw), 3)
	}
}
