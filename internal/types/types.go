package types

// ConversationText is the normalized view of one transcript. It is built once
// by the preprocessor and read-only everywhere downstream.
type ConversationText struct {
	DoctorText  string `json:"doctor_text"`
	PatientText string `json:"patient_text"`
	FullText    string `json:"full_text"`
}

// EntityBag holds the classified medical entity spans per category. Each list
// is deduplicated, trimmed, and keeps first-seen order.
type EntityBag struct {
	Symptoms  []string `json:"Symptoms"`
	Diagnosis []string `json:"Diagnosis"`
	Treatment []string `json:"Treatment"`
	Prognosis []string `json:"Prognosis"`
}

type Sentiment string

const (
	SentimentAnxious   Sentiment = "Anxious"
	SentimentNeutral   Sentiment = "Neutral"
	SentimentReassured Sentiment = "Reassured"
)

type Intent string

const (
	IntentReportingSymptoms   Intent = "Reporting symptoms"
	IntentSeekingReassurance  Intent = "Seeking reassurance"
	IntentConfirmingRecovery  Intent = "Confirming recovery"
	IntentAskingQuestions     Intent = "Asking questions"
	IntentDescribingCondition Intent = "Describing condition"
)

// SentimentIntent is the whole-conversation classification of the patient's
// side of the dialogue.
type SentimentIntent struct {
	Sentiment Sentiment `json:"Sentiment"`
	Intent    Intent    `json:"Intent"`
}

// MedicalReport is the flat summary record written to medical_summary.json.
type MedicalReport struct {
	PatientName   string   `json:"Patient_Name"`
	Date          string   `json:"Date"`
	Symptoms      []string `json:"Symptoms"`
	Diagnosis     string   `json:"Diagnosis"`
	Treatment     []string `json:"Treatment"`
	CurrentStatus string   `json:"Current_Status"`
	Prognosis     string   `json:"Prognosis"`
}

type Subjective struct {
	ChiefComplaint          string   `json:"Chief_Complaint"`
	HistoryOfPresentIllness string   `json:"History_of_Present_Illness"`
	PatientReportedSymptoms []string `json:"Patient_Reported_Symptoms"`
	PatientConcerns         []string `json:"Patient_Concerns"`
}

type Objective struct {
	PhysicalExamination   string   `json:"Physical_Examination"`
	ClinicalObservations  []string `json:"Clinical_Observations"`
	DiagnosticInformation []string `json:"Diagnostic_Information"`
}

type Assessment struct {
	PrimaryDiagnosis      string   `json:"Primary_Diagnosis"`
	DifferentialDiagnosis []string `json:"Differential_Diagnosis"`
	ClinicalAssessment    string   `json:"Clinical_Assessment"`
}

type Plan struct {
	TreatmentPlan          []string `json:"Treatment_Plan"`
	Medications            []string `json:"Medications"`
	TherapyRecommendations []string `json:"Therapy_Recommendations"`
	FollowUp               string   `json:"Follow_Up"`
	Prognosis              string   `json:"Prognosis"`
}

// SoapNote is the structured clinical note written to soap_note.json.
type SoapNote struct {
	PatientName string     `json:"Patient_Name"`
	Date        string     `json:"Date"`
	Subjective  Subjective `json:"Subjective"`
	Objective   Objective  `json:"Objective"`
	Assessment  Assessment `json:"Assessment"`
	Plan        Plan       `json:"Plan"`
}

// CompleteOutput bundles every pipeline artifact under the fixed top-level
// keys of complete_output.json.
type CompleteOutput struct {
	MedicalReport   MedicalReport   `json:"Medical_Report"`
	Entities        EntityBag       `json:"NER_Extraction"`
	Keywords        []string        `json:"Keywords"`
	Summary         string          `json:"Summary"`
	SentimentIntent SentimentIntent `json:"Sentiment_Intent"`
	SoapNote        SoapNote        `json:"SOAP_Note"`
}
