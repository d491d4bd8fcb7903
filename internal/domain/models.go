package domain

import "time"

// HealthRecord is one row of an uploaded health metrics table.
type HealthRecord struct {
	Date          time.Time `json:"date"`
	HeartRate     float64   `json:"heart_rate"`
	BloodPressure float64   `json:"blood_pressure"`
}
