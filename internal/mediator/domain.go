package mediator

// Mode is the kind of user interaction a query came from.
type Mode string

const (
	ModeChat          Mode = "chat"
	ModeSymptoms      Mode = "symptoms"
	ModeTreatmentPlan Mode = "treatment_plan"
	ModeAnalytics     Mode = "analytics"
)

// Query is the outbound message built from one user action. It is sent once and discarded.
type Query struct {
	// Text is sent to the assistant as-is.
	Text string `json:"text"`
	Mode Mode   `json:"mode"`
}
