package mediator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"healthai/internal/domain"
)

// DefaultAnalyticsWindow is how many trailing records an analytics query summarizes.
const DefaultAnalyticsWindow = 5

const (
	symptomsPrefix    = "Symptoms: "
	treatmentTemplate = "Provide a treatment plan for a %d-year-old with %s"
	analyticsTemplate = "Analyze this recent health data: %s"
)

// BuildChatQuery wraps the question verbatim.
func BuildChatQuery(question string) Query {
	return Query{Text: question, Mode: ModeChat}
}

// BuildSymptomQuery labels the symptom list.
func BuildSymptomQuery(symptoms string) Query {
	return Query{Text: symptomsPrefix + symptoms, Mode: ModeSymptoms}
}

// BuildTreatmentQuery asks for a plan for the condition at the given age.
// The age bound is enforced at the API boundary, not here.
func BuildTreatmentQuery(condition string, age int) Query {
	return Query{Text: fmt.Sprintf(treatmentTemplate, age, condition), Mode: ModeTreatmentPlan}
}

// BuildAnalyticsQuery summarizes the last maxRecords records in the order they were
// supplied. Records are not sorted by date first. maxRecords <= 0 selects
// DefaultAnalyticsWindow.
func BuildAnalyticsQuery(records []domain.HealthRecord, maxRecords int) Query {
	tail := TailRecords(records, maxRecords)
	return Query{Text: fmt.Sprintf(analyticsTemplate, FormatRecords(tail)), Mode: ModeAnalytics}
}

// TailRecords returns the last maxRecords records without copying.
func TailRecords(records []domain.HealthRecord, maxRecords int) []domain.HealthRecord {
	if maxRecords <= 0 {
		maxRecords = DefaultAnalyticsWindow
	}
	if len(records) > maxRecords {
		return records[len(records)-maxRecords:]
	}
	return records
}

// FormatRecords renders records as a JSON array of
// {"date","heart_rate","blood_pressure"} objects.
func FormatRecords(records []domain.HealthRecord) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, rec := range records {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`{"date": `)
		b.WriteString(strconv.Quote(rec.Date.Format(time.RFC3339)))
		b.WriteString(`, "heart_rate": `)
		b.WriteString(strconv.FormatFloat(rec.HeartRate, 'f', -1, 64))
		b.WriteString(`, "blood_pressure": `)
		b.WriteString(strconv.FormatFloat(rec.BloodPressure, 'f', -1, 64))
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.String()
}
