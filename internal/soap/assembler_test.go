package soap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"clinical-insights-go/internal/types"
)

var sampleConv = types.ConversationText{
	DoctorText: "Good morning Janet, how are you feeling today? The examination showed good mobility. " +
		"I noted reduced swelling around the neck. Please schedule a follow-up appointment in two weeks.",
	PatientText: "The neck pain is still bothering me at night. I'm worried the recovery is too slow. " +
		"I had a question about the exercises.",
	FullText: "Good morning Janet, how are you feeling today? The neck pain is still bothering me at night. " +
		"The examination showed good mobility. I noted reduced swelling around the neck. " +
		"He prescribed ibuprofen medication for the pain. Physiotherapy sessions continue twice a week. " +
		"Please schedule a follow-up appointment in two weeks.",
}

var sampleBag = types.EntityBag{
	Symptoms:  []string{"neck pain", "swelling"},
	Diagnosis: []string{"whiplash injury", "muscle strain"},
	Treatment: []string{"physiotherapy"},
	Prognosis: []string{"full recovery expected", "within six months"},
}

const sampleSummary = "Patient recovering from whiplash injury with improving symptoms."

func TestBuildMedicalReport(t *testing.T) {
	report, _ := Build(sampleConv, sampleBag, sampleSummary, "2026-08-28")

	assert.Equal(t, "Janet", report.PatientName)
	assert.Equal(t, "2026-08-28", report.Date)
	assert.Equal(t, []string{"neck pain", "swelling"}, report.Symptoms)
	assert.Equal(t, "whiplash injury", report.Diagnosis)
	assert.Equal(t, []string{"physiotherapy"}, report.Treatment)
	assert.Equal(t, sampleSummary, report.CurrentStatus)
	assert.Equal(t, "full recovery expected within six months", report.Prognosis)
}

func TestBuildSoapNote(t *testing.T) {
	_, note := Build(sampleConv, sampleBag, sampleSummary, "2026-08-28")

	assert.Equal(t, "Janet", note.PatientName)
	assert.Equal(t, "The neck pain is still bothering me at night", note.Subjective.ChiefComplaint)
	assert.Equal(t, "Patient reports: neck pain, swelling", note.Subjective.HistoryOfPresentIllness)
	assert.Equal(t, []string{
		"I'm worried the recovery is too slow",
		"I had a question about the exercises",
	}, note.Subjective.PatientConcerns)

	assert.Contains(t, note.Objective.PhysicalExamination, "The examination showed good mobility")
	assert.Contains(t, note.Objective.PhysicalExamination, "I noted reduced swelling around the neck")

	assert.Equal(t, "whiplash injury", note.Assessment.PrimaryDiagnosis)
	assert.Equal(t, []string{"whiplash injury", "muscle strain"}, note.Assessment.DifferentialDiagnosis)
	assert.Equal(t, sampleSummary, note.Assessment.ClinicalAssessment)

	assert.Equal(t, []string{"physiotherapy"}, note.Plan.TreatmentPlan)
	assert.Equal(t, "Please schedule a follow-up appointment in two weeks", note.Plan.FollowUp)
	assert.Equal(t, "full recovery expected within six months", note.Plan.Prognosis)
}

func TestMedicationNameSubExtraction(t *testing.T) {
	meds := extractMedications("He prescribed ibuprofen medication for the pain.")
	assert.Equal(t, []string{"prescribed ibuprofen"}, meds)
}

func TestMedicationFallsBackToTruncatedSentence(t *testing.T) {
	meds := extractMedications("Medication will help you sleep at night.")
	assert.Equal(t, []string{"Medication will help you sleep at night"}, meds)
}

func TestExtractPatientName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"greeting pattern", "Good morning Janet, how are you feeling", "Janet"},
		{"two-part name", "Morning John Smith, how is the knee", "John Smith"},
		{"tag pattern mid-line", "Notes for Patient: Maria today", "Maria"},
		{"no match", "the conversation had no names", "Patient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPatientName(tt.text))
		})
	}
}

func TestBuildDefaultsOnEmptyInput(t *testing.T) {
	report, note := Build(types.ConversationText{}, types.EntityBag{}, "", "2026-08-28")

	assert.Equal(t, "Patient", report.PatientName)
	assert.Equal(t, "Not specified", report.Diagnosis)
	assert.Equal(t, "Not specified", report.Prognosis)
	assert.Equal(t, "", report.CurrentStatus)
	assert.NotNil(t, report.Symptoms)
	assert.Empty(t, report.Symptoms)

	assert.Equal(t, "Not specified", note.Subjective.ChiefComplaint)
	assert.Equal(t, "See patient text for details", note.Subjective.HistoryOfPresentIllness)
	assert.Equal(t, "No specific examination findings documented", note.Objective.PhysicalExamination)
	assert.Equal(t, "Follow-up as needed", note.Plan.FollowUp)
	assert.Equal(t, "Not specified", note.Plan.Prognosis)
	assert.Empty(t, note.Plan.Medications)
	assert.Empty(t, note.Subjective.PatientConcerns)
}

func TestChiefComplaintTruncation(t *testing.T) {
	long := "The pain has been " + strings.Repeat("really ", 40) + "bad"
	got := extractChiefComplaint(long)
	assert.Len(t, got, 200)
}
