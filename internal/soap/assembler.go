package soap

import (
	"regexp"
	"strings"

	"clinical-insights-go/internal/textutil"
	"clinical-insights-go/internal/types"
)

const notSpecified = "Not specified"

var (
	chiefComplaintKeywords = []string{"pain", "ache", "discomfort", "problem", "issue"}
	concernKeywords        = []string{"worried", "concerned", "afraid", "uncertain", "question"}
	examKeywords           = []string{"examination", "exam", "observed", "found", "noted", "appears"}
	observationKeywords    = []string{"progress", "improving", "healing", "better", "recovery"}
	diagnosticKeywords     = []string{"diagnosed", "diagnosis", "test", "result", "finding"}
	medicationKeywords     = []string{"medication", "medicine", "drug", "painkiller", "prescription", "pill"}
	therapyKeywords        = []string{"physiotherapy", "therapy", "exercise", "session", "treatment"}
	followUpKeywords       = []string{"follow-up", "follow up", "appointment", "schedule", "next visit"}
)

var (
	taggedNamePattern = regexp.MustCompile(`Patient:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	greetNamePattern  = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?),?\s+(?:how|feeling|doing)`)
	medicationName    = regexp.MustCompile(`(?i)(\w+(?:\s+\w+)?)\s+(?:medication|medicine|drug|painkiller)`)
)

// Build assembles the flat medical report and the SOAP note from the
// normalized conversation, the extracted entities, and the summary. It is a
// pure function: every field degrades to a documented default, nothing here
// can fail.
func Build(conv types.ConversationText, bag types.EntityBag, summary, date string) (types.MedicalReport, types.SoapNote) {
	name := extractPatientName(conv.FullText)

	report := types.MedicalReport{
		PatientName:   name,
		Date:          date,
		Symptoms:      orEmpty(bag.Symptoms),
		Diagnosis:     firstOr(bag.Diagnosis, notSpecified),
		Treatment:     orEmpty(bag.Treatment),
		CurrentStatus: textutil.Truncate(summary, 200),
		Prognosis:     joinOr(bag.Prognosis, notSpecified),
	}

	note := types.SoapNote{
		PatientName: name,
		Date:        date,
		Subjective: types.Subjective{
			ChiefComplaint:          extractChiefComplaint(conv.PatientText),
			HistoryOfPresentIllness: extractHPI(bag.Symptoms),
			PatientReportedSymptoms: orEmpty(bag.Symptoms),
			PatientConcerns:         matchingSentences(conv.PatientText, concernKeywords, 5, 0),
		},
		Objective: types.Objective{
			PhysicalExamination:   extractExamination(conv.DoctorText),
			ClinicalObservations:  matchingSentences(conv.DoctorText, observationKeywords, 5, 0),
			DiagnosticInformation: matchingSentences(conv.FullText, diagnosticKeywords, 10, 0),
		},
		Assessment: types.Assessment{
			PrimaryDiagnosis:      firstOr(bag.Diagnosis, notSpecified),
			DifferentialDiagnosis: orEmpty(bag.Diagnosis),
			ClinicalAssessment:    summary,
		},
		Plan: types.Plan{
			TreatmentPlan:          orEmpty(bag.Treatment),
			Medications:            extractMedications(conv.FullText),
			TherapyRecommendations: matchingSentences(conv.FullText, therapyKeywords, 5, 150),
			FollowUp:               extractFollowUp(conv.DoctorText),
			Prognosis:              joinOr(bag.Prognosis, notSpecified),
		},
	}

	return report, note
}

func extractPatientName(fullText string) string {
	if m := taggedNamePattern.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	if m := greetNamePattern.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	return "Patient"
}

func extractChiefComplaint(patientText string) string {
	for _, s := range textutil.SplitSentences(patientText, 0) {
		if textutil.ContainsAny(s, chiefComplaintKeywords) {
			return textutil.Truncate(s, 200)
		}
	}
	return notSpecified
}

func extractHPI(symptoms []string) string {
	if len(symptoms) > 0 {
		return "Patient reports: " + strings.Join(symptoms, ", ")
	}
	return "See patient text for details"
}

func extractExamination(doctorText string) string {
	found := matchingSentences(doctorText, examKeywords, 3, 0)
	if len(found) > 0 {
		return strings.Join(found, ". ")
	}
	return "No specific examination findings documented"
}

// extractMedications prefers the word or two immediately preceding a
// medication-type keyword, falling back to the whole truncated sentence, then
// deduplicates in first-seen order so reruns stay byte-identical.
func extractMedications(fullText string) []string {
	var meds []string
	for _, s := range textutil.SplitSentences(fullText, 0) {
		if !textutil.ContainsAny(s, medicationKeywords) {
			continue
		}
		if m := medicationName.FindStringSubmatch(s); m != nil {
			meds = append(meds, m[1])
		} else {
			meds = append(meds, textutil.Truncate(s, 100))
		}
	}
	meds = textutil.Dedupe(meds)
	if len(meds) > 10 {
		meds = meds[:10]
	}
	return meds
}

func extractFollowUp(doctorText string) string {
	for _, s := range textutil.SplitSentences(doctorText, 0) {
		if textutil.ContainsAny(s, followUpKeywords) {
			return s
		}
	}
	return "Follow-up as needed"
}

// matchingSentences collects up to limit sentences containing any keyword,
// optionally truncating each to maxLen characters.
func matchingSentences(text string, keywords []string, limit, maxLen int) []string {
	out := make([]string, 0, limit)
	for _, s := range textutil.SplitSentences(text, 0) {
		if !textutil.ContainsAny(s, keywords) {
			continue
		}
		if maxLen > 0 {
			s = textutil.Truncate(s, maxLen)
		}
		out = append(out, s)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func firstOr(items []string, def string) string {
	if len(items) > 0 {
		return items[0]
	}
	return def
}

func joinOr(items []string, def string) string {
	if len(items) > 0 {
		return strings.Join(items, " ")
	}
	return def
}
