package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"clinical-insights-go/internal/logger"
)

// TranscriptRecord is one row of a batch transcript worksheet.
type TranscriptRecord struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name,omitempty"`
	Transcript  string `json:"transcript"`
}

// Load reads transcripts from the first sheet of an xlsx workbook,
// auto-detecting columns by header heuristics. Rows without transcript text
// are skipped quietly.
func Load(path string) ([]TranscriptRecord, error) {
	log := logger.New().WithField("component", "dataset").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	header := rows[0]
	idIdx, nameIdx, textIdx := -1, -1, -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case textIdx == -1 && (strings.Contains(l, "transcript") || strings.Contains(l, "conversation") || strings.Contains(l, "text")):
			textIdx = i
		case idIdx == -1 && strings.Contains(l, "id"):
			idIdx = i
		case nameIdx == -1 && (strings.Contains(l, "patient") || strings.Contains(l, "name")):
			nameIdx = i
		}
	}
	// fallback: assume the transcript lives in the last column
	if textIdx == -1 {
		textIdx = len(header) - 1
	}
	log.WithField("transcript_col", textIdx).Info("detected worksheet columns")

	var out []TranscriptRecord
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := TranscriptRecord{}
		if idIdx >= 0 && idIdx < len(r) {
			rec.ID = strings.TrimSpace(r[idIdx])
		}
		if rec.ID == "" {
			rec.ID = "row-" + strconv.Itoa(i)
		}
		if nameIdx >= 0 && nameIdx < len(r) {
			rec.PatientName = strings.TrimSpace(r[nameIdx])
		}
		if textIdx >= 0 && textIdx < len(r) {
			rec.Transcript = strings.TrimSpace(r[textIdx])
		}
		if rec.Transcript == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
