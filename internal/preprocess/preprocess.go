package preprocess

import (
	"regexp"
	"strings"

	"clinical-insights-go/internal/types"
)

const (
	doctorTag  = "Doctor:"
	patientTag = "Patient:"
)

var (
	wsRun     = regexp.MustCompile(`\s+`)
	periodRun = regexp.MustCompile(`\.{2,}`)
)

// Normalize collapses whitespace runs to single spaces, collapses repeated
// periods, and trims the ends.
func Normalize(text string) string {
	text = wsRun.ReplaceAllString(text, " ")
	text = periodRun.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}

// Segment splits a raw transcript into doctor, patient, and combined text.
// Lines prefixed with "Doctor:" or "Patient:" start a new utterance for that
// speaker. An untagged line continues the running utterance: the doctor's
// while doctor utterances strictly outnumber the patient's, otherwise the
// patient's last utterance when one exists. Untagged lines seen before any
// speaker contribute to the full text only. Downstream field extraction
// depends on this exact attribution, so it is preserved as-is.
func Segment(raw string) types.ConversationText {
	var doctorLines, patientLines, allLines []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, doctorTag):
			t := strings.TrimSpace(strings.TrimPrefix(line, doctorTag))
			doctorLines = append(doctorLines, t)
			allLines = append(allLines, t)
		case strings.HasPrefix(line, patientTag):
			t := strings.TrimSpace(strings.TrimPrefix(line, patientTag))
			patientLines = append(patientLines, t)
			allLines = append(allLines, t)
		default:
			if len(doctorLines) > 0 && len(doctorLines) > len(patientLines) {
				doctorLines[len(doctorLines)-1] += " " + line
			} else if len(patientLines) > 0 {
				patientLines[len(patientLines)-1] += " " + line
			}
			allLines = append(allLines, line)
		}
	}

	return types.ConversationText{
		DoctorText:  Normalize(strings.Join(doctorLines, " ")),
		PatientText: Normalize(strings.Join(patientLines, " ")),
		FullText:    Normalize(strings.Join(allLines, " ")),
	}
}
